package monitor

import (
	"errors"
	"fmt"
	"time"

	"github.com/ftarasenko/driftwatch/internal/service/predictor"
	"github.com/ftarasenko/driftwatch/pkg/decimalx"
	"github.com/shopspring/decimal"
)

// ErrDegenerateInput 上一次价格为0, 涨跌幅无法计算, 本轮评估跳过
var ErrDegenerateInput = errors.New("degenerate price input")

// LastPrices 上一个采样点的价格, 两个价格永远一起更新
type LastPrices struct {
	Influence decimal.Decimal
	Target    decimal.Decimal
}

// State 监控状态, 由单一控制循环独占持有, 只通过Evaluate推进
type State struct {
	// Last 首个采样之前为nil
	Last *LastPrices
	// ReferenceTime 当前观察窗口的起点, 仅在窗口关闭时前移
	ReferenceTime time.Time
	// TotalIndependentChange 窗口内累计的独立涨跌幅(%)
	TotalIndependentChange decimal.Decimal
}

func NewState(now time.Time) State {
	return State{
		ReferenceTime:          now,
		TotalIndependentChange: decimal.Zero,
	}
}

// Monitor 排除影响币种联动后, 监控目标币种的独立异动
type Monitor struct {
	cfg       Config
	predictor predictor.Predictor
}

func NewMonitor(cfg Config, p predictor.Predictor) (*Monitor, error) {
	if cfg.InfluenceSymbol == "" || cfg.TargetSymbol == "" {
		return nil, fmt.Errorf("influence and target symbols are required")
	}
	if cfg.InfluenceSymbol == cfg.TargetSymbol {
		return nil, fmt.Errorf("influence and target symbols must differ, got %s", cfg.TargetSymbol)
	}
	if cfg.TimePeriod <= 0 {
		return nil, fmt.Errorf("time period must be positive, got %s", cfg.TimePeriod)
	}
	if !cfg.MaxIndependentChange.IsPositive() {
		return nil, fmt.Errorf("max independent change must be positive, got %s", cfg.MaxIndependentChange)
	}
	if p == nil {
		return nil, fmt.Errorf("predictor is required")
	}
	return &Monitor{
		cfg:       cfg,
		predictor: p,
	}, nil
}

func (m *Monitor) Config() Config {
	return m.cfg
}

// Evaluate 根据新采样推进状态:
// 计算目标币种涨跌幅中无法被影响币种解释的残差并累计,
// 累计值越限或窗口超时则重置窗口, 仅越限时返回告警(携带重置前的值)。
// 首个采样只记录价格, 不做评估。
func (m *Monitor) Evaluate(state State, influencePrice, targetPrice decimal.Decimal, now time.Time) (State, *Alert, error) {
	var alert *Alert
	var err error

	if state.Last != nil {
		if state.Last.Influence.IsZero() || state.Last.Target.IsZero() {
			err = fmt.Errorf("%w: last influence=%s target=%s",
				ErrDegenerateInput, state.Last.Influence, state.Last.Target)
		} else {
			targetChange := decimalx.PctChange(state.Last.Target, targetPrice)
			influenceChange := decimalx.PctChange(state.Last.Influence, influencePrice)
			residual := targetChange.Sub(m.predictor.Predict(influenceChange))
			state.TotalIndependentChange = state.TotalIndependentChange.Add(residual)

			timePassed := now.Sub(state.ReferenceTime)
			breached := state.TotalIndependentChange.Abs().GreaterThan(m.cfg.MaxIndependentChange)
			if breached || timePassed > m.cfg.TimePeriod {
				if breached {
					alert = &Alert{
						InfluenceSymbol:   m.cfg.InfluenceSymbol,
						TargetSymbol:      m.cfg.TargetSymbol,
						InfluencePrice:    influencePrice,
						TargetPrice:       targetPrice,
						IndependentChange: state.TotalIndependentChange,
						WindowElapsed:     timePassed,
						Timestamp:         now,
					}
				}
				state.ReferenceTime = now
				state.TotalIndependentChange = decimal.Zero
			}
		}
	}

	// 无论评估结果如何, 价格都一起重置为最新值
	state.Last = &LastPrices{
		Influence: influencePrice,
		Target:    targetPrice,
	}
	return state, alert, err
}
