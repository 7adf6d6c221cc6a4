package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ftarasenko/driftwatch/internal/repo"
	"github.com/ftarasenko/driftwatch/internal/schedule"
	"github.com/ftarasenko/driftwatch/internal/service/llm/gemini"
	"github.com/ftarasenko/driftwatch/internal/service/monitor"
	"github.com/ftarasenko/driftwatch/internal/service/quote"
	"github.com/ftarasenko/driftwatch/ioc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}
}

func main() {
	initViper()

	db := ioc.InitDB()
	if err := repo.InitTables(db); err != nil {
		panic(err)
	}
	alertRepo := repo.NewAlertRepo(db)

	cfg, pollInterval := ioc.InitMonitorConfig()
	m, err := monitor.NewMonitor(cfg, ioc.InitPredictor())
	if err != nil {
		panic(err)
	}

	fetcher := quote.NewFetcher(quote.NewBinanceService(ioc.InitBinanceCli()))

	opts := []monitor.Option{
		monitor.WithRepo(alertRepo),
	}
	if notifier := ioc.InitTelegramNotifier(); notifier != nil {
		opts = append(opts, monitor.WithNotifier(notifier))
	}
	if geminiCli := ioc.InitGeminiCli(); geminiCli != nil {
		llmSvc := gemini.NewService(geminiCli)
		opts = append(opts, monitor.WithExplainer(monitor.NewLLMExplainer(llmSvc)))
	}

	task := monitor.NewTask(m, fetcher, opts...)
	runner := schedule.NewRunner(task, pollInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("start monitoring",
		"influence", cfg.InfluenceSymbol,
		"target", cfg.TargetSymbol,
		"time_period", cfg.TimePeriod,
		"max_independent_change", cfg.MaxIndependentChange)

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		panic(err)
	}
}
