package quote

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/shopspring/decimal"
)

var _ Service = (*BinanceService)(nil)

type BinanceService struct {
	cli *futures.Client
}

// NewBinanceService 创建行情服务
func NewBinanceService(cli *futures.Client) *BinanceService {
	return &BinanceService{cli: cli}
}

func (svc *BinanceService) LastPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	prices, err := svc.cli.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %v", ErrQuoteUnavailable, symbol, err)
	}
	if len(prices) == 0 {
		return decimal.Zero, fmt.Errorf("%w: %s: empty response", ErrQuoteUnavailable, symbol)
	}
	price, err := decimal.NewFromString(prices[0].Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: parse price %q: %v", ErrQuoteUnavailable, symbol, prices[0].Price, err)
	}
	return price, nil
}
