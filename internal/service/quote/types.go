package quote

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrQuoteUnavailable 行情不可用 (网络错误, 空响应或价格无法解析)
var ErrQuoteUnavailable = errors.New("quote unavailable")

// Sample 某一采样时刻所有交易对的最新价格
type Sample map[string]decimal.Decimal

type Service interface {
	LastPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}
