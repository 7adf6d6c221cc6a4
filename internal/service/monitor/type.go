package monitor

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Config 监控配置, 构造后不可变
type Config struct {
	InfluenceSymbol string
	TargetSymbol    string

	// TimePeriod 观察窗口时长, 超时后静默重置
	TimePeriod time.Duration
	// MaxIndependentChange 独立涨跌幅累计阈值(%), 超过则告警并重置
	MaxIndependentChange decimal.Decimal
}

// Alert 目标币种独立异动告警, 携带重置前的累计值
type Alert struct {
	InfluenceSymbol string          `json:"influence_symbol"`
	TargetSymbol    string          `json:"target_symbol"`
	InfluencePrice  decimal.Decimal `json:"influence_price"`
	TargetPrice     decimal.Decimal `json:"target_price"`

	// IndependentChange 窗口内累计的独立涨跌幅(%)
	IndependentChange decimal.Decimal `json:"independent_change"`
	// WindowElapsed 从窗口起点到触发时刻经过的时间
	WindowElapsed time.Duration `json:"window_elapsed"`

	Timestamp  time.Time `json:"timestamp"`
	Commentary string    `json:"commentary,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}

// Explainer 为告警生成一段人类可读的解读, 失败不阻塞告警
type Explainer interface {
	Explain(ctx context.Context, alert Alert) (string, error)
}
