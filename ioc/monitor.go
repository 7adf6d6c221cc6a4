package ioc

import (
	"time"

	"github.com/ftarasenko/driftwatch/internal/service/monitor"
	"github.com/ftarasenko/driftwatch/internal/service/predictor"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// InitMonitorConfig 监控配置, 默认跟踪BTC对ETH的影响, 窗口1小时, 阈值1%
func InitMonitorConfig() (monitor.Config, time.Duration) {
	type Config struct {
		InfluenceSymbol      string  `mapstructure:"influence_symbol"`
		TargetSymbol         string  `mapstructure:"target_symbol"`
		TimePeriod           int     `mapstructure:"time_period"` // 秒
		MaxIndependentChange float64 `mapstructure:"max_independent_change"`
		PollInterval         int     `mapstructure:"poll_interval"` // 秒
	}

	cfg := Config{
		InfluenceSymbol:      "BTCUSDT",
		TargetSymbol:         "ETHUSDT",
		TimePeriod:           3600,
		MaxIndependentChange: 1.0,
		PollInterval:         5,
	}
	if err := viper.UnmarshalKey("monitor", &cfg); err != nil {
		panic(err)
	}

	return monitor.Config{
		InfluenceSymbol:      cfg.InfluenceSymbol,
		TargetSymbol:         cfg.TargetSymbol,
		TimePeriod:           time.Duration(cfg.TimePeriod) * time.Second,
		MaxIndependentChange: decimal.NewFromFloat(cfg.MaxIndependentChange),
	}, time.Duration(cfg.PollInterval) * time.Second
}

// InitPredictor 加载拟合好的线性模型
func InitPredictor() predictor.Predictor {
	type Config struct {
		Path string `mapstructure:"path"`
	}

	cfg := Config{
		Path: "./model.json",
	}
	if err := viper.UnmarshalKey("model", &cfg); err != nil {
		panic(err)
	}

	model, err := predictor.LoadFile(cfg.Path)
	if err != nil {
		panic(err)
	}
	return model
}
