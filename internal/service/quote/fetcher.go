package quote

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Fetcher 并发拉取一组交易对的最新价格
type Fetcher struct {
	svc Service
}

func NewFetcher(svc Service) *Fetcher {
	return &Fetcher{svc: svc}
}

// FetchSample 对每个symbol并发发起一次请求, 全部成功才返回Sample,
// 任何一个失败则整体失败, 不返回部分结果
func (f *Fetcher) FetchSample(ctx context.Context, symbols []string) (Sample, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols to fetch")
	}
	if len(lo.Uniq(symbols)) != len(symbols) {
		return nil, fmt.Errorf("duplicate symbols in %v", symbols)
	}

	var mu sync.Mutex
	sample := make(Sample, len(symbols))

	eg, ctx := errgroup.WithContext(ctx)
	for _, symbol := range symbols {
		symbol := symbol
		eg.Go(func() error {
			price, err := f.svc.LastPrice(ctx, symbol)
			if err != nil {
				return err
			}
			mu.Lock()
			sample[symbol] = price
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return sample, nil
}

// Price 取出symbol对应价格, 不存在时返回错误
func (s Sample) Price(symbol string) (decimal.Decimal, error) {
	price, ok := s[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s: missing from sample", ErrQuoteUnavailable, symbol)
	}
	return price, nil
}
