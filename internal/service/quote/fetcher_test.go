package quote

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteService struct {
	prices map[string]decimal.Decimal
	delays map[string]time.Duration
	errs   map[string]error
}

func (f *fakeQuoteService) LastPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if delay, ok := f.delays[symbol]; ok {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return decimal.Zero, ctx.Err()
		}
	}
	if err, ok := f.errs[symbol]; ok {
		return decimal.Zero, err
	}
	price, ok := f.prices[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrQuoteUnavailable, symbol)
	}
	return price, nil
}

func TestFetcher_FetchSample(t *testing.T) {
	svc := &fakeQuoteService{
		prices: map[string]decimal.Decimal{
			"BTCUSDT": decimal.NewFromInt(68000),
			"ETHUSDT": decimal.NewFromInt(3400),
		},
	}
	fetcher := NewFetcher(svc)

	sample, err := fetcher.FetchSample(context.Background(), []string{"BTCUSDT", "ETHUSDT"})
	require.NoError(t, err)
	assert.Len(t, sample, 2)

	btc, err := sample.Price("BTCUSDT")
	require.NoError(t, err)
	assert.True(t, btc.Equal(decimal.NewFromInt(68000)))

	eth, err := sample.Price("ETHUSDT")
	require.NoError(t, err)
	assert.True(t, eth.Equal(decimal.NewFromInt(3400)))
}

// 两个请求应该并发执行, 总耗时接近最慢的一个而不是两者之和
func TestFetcher_FetchSampleConcurrent(t *testing.T) {
	svc := &fakeQuoteService{
		prices: map[string]decimal.Decimal{
			"BTCUSDT": decimal.NewFromInt(68000),
			"ETHUSDT": decimal.NewFromInt(3400),
		},
		delays: map[string]time.Duration{
			"BTCUSDT": 200 * time.Millisecond,
			"ETHUSDT": 50 * time.Millisecond,
		},
	}
	fetcher := NewFetcher(svc)

	start := time.Now()
	sample, err := fetcher.FetchSample(context.Background(), []string{"BTCUSDT", "ETHUSDT"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Len(t, sample, 2)
	assert.Less(t, elapsed, 250*time.Millisecond, "fetches ran sequentially: %s", elapsed)
	assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
}

func TestFetcher_FetchSampleFailure(t *testing.T) {
	testCases := []struct {
		name   string
		failed string
	}{
		{
			name:   "influence fetch fails",
			failed: "BTCUSDT",
		},
		{
			name:   "target fetch fails",
			failed: "ETHUSDT",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeQuoteService{
				prices: map[string]decimal.Decimal{
					"BTCUSDT": decimal.NewFromInt(68000),
					"ETHUSDT": decimal.NewFromInt(3400),
				},
				errs: map[string]error{
					tc.failed: fmt.Errorf("%w: %s: connection reset", ErrQuoteUnavailable, tc.failed),
				},
			}
			fetcher := NewFetcher(svc)

			sample, err := fetcher.FetchSample(context.Background(), []string{"BTCUSDT", "ETHUSDT"})
			assert.ErrorIs(t, err, ErrQuoteUnavailable)
			assert.Nil(t, sample, "partial sample must not be returned")
		})
	}
}

func TestFetcher_FetchSampleBadSymbols(t *testing.T) {
	fetcher := NewFetcher(&fakeQuoteService{})

	_, err := fetcher.FetchSample(context.Background(), nil)
	assert.Error(t, err)

	_, err = fetcher.FetchSample(context.Background(), []string{"BTCUSDT", "BTCUSDT"})
	assert.Error(t, err)
}
