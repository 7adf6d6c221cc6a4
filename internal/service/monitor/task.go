package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ftarasenko/driftwatch/internal/entity"
	"github.com/ftarasenko/driftwatch/internal/repo"
	"github.com/ftarasenko/driftwatch/internal/schedule"
	"github.com/ftarasenko/driftwatch/internal/service/quote"
)

type consoleNotifier struct {
}

func (c consoleNotifier) Notify(ctx context.Context, alert Alert) error {
	fmt.Printf("independent movement of %s: %s%% over %s\n",
		alert.TargetSymbol, alert.IndependentChange, alert.WindowElapsed)
	return nil
}

// NewConsoleNotifier 默认通知渠道, 直接打印到控制台
func NewConsoleNotifier() Notifier {
	return consoleNotifier{}
}

type Option func(t *Task)

func WithNotifier(notifier Notifier) Option {
	return func(t *Task) {
		t.notifier = notifier
	}
}

func WithRepo(alertRepo repo.AlertRepo) Option {
	return func(t *Task) {
		t.repo = alertRepo
	}
}

func WithExplainer(explainer Explainer) Option {
	return func(t *Task) {
		t.explainer = explainer
	}
}

// WithNow 注入时钟, 测试用
func WithNow(now func() time.Time) Option {
	return func(t *Task) {
		t.now = now
		t.state = NewState(now())
	}
}

// Task 单次采样周期: 并发取两个价格, 喂给Monitor评估, 触发告警时通知并落库。
// 状态由Task独占持有, Run不允许并发调用。
type Task struct {
	monitor *Monitor
	fetcher *quote.Fetcher

	notifier  Notifier
	explainer Explainer
	repo      repo.AlertRepo

	state State
	now   func() time.Time
}

func NewTask(monitor *Monitor, fetcher *quote.Fetcher, opts ...Option) schedule.Task {
	task := &Task{
		monitor:  monitor,
		fetcher:  fetcher,
		notifier: consoleNotifier{},
		now:      time.Now,
	}
	task.state = NewState(task.now())
	for _, opt := range opts {
		opt(task)
	}
	return task
}

func (t *Task) Run(ctx context.Context) error {
	cfg := t.monitor.Config()
	sample, err := t.fetcher.FetchSample(ctx, []string{cfg.InfluenceSymbol, cfg.TargetSymbol})
	if err != nil {
		return err
	}

	influencePrice, err := sample.Price(cfg.InfluenceSymbol)
	if err != nil {
		return err
	}
	targetPrice, err := sample.Price(cfg.TargetSymbol)
	if err != nil {
		return err
	}

	state, alert, err := t.monitor.Evaluate(t.state, influencePrice, targetPrice, t.now())
	t.state = state
	if err != nil {
		return err
	}
	if alert == nil {
		return nil
	}

	slog.Info("independent movement detected",
		"target", alert.TargetSymbol,
		"change", alert.IndependentChange,
		"elapsed", alert.WindowElapsed)

	if t.explainer != nil {
		commentary, err := t.explainer.Explain(ctx, *alert)
		if err != nil {
			slog.Error("failed to explain alert", "error", err)
		} else {
			alert.Commentary = commentary
		}
	}

	if t.repo != nil {
		_, err = t.repo.Create(ctx, entity.Alert{
			InfluenceSymbol:   alert.InfluenceSymbol,
			TargetSymbol:      alert.TargetSymbol,
			InfluencePrice:    alert.InfluencePrice.String(),
			TargetPrice:       alert.TargetPrice.String(),
			IndependentChange: alert.IndependentChange.String(),
			WindowElapsed:     int64(alert.WindowElapsed / time.Second),
			Commentary:        alert.Commentary,
			CreatedAt:         alert.Timestamp,
		})
		if err != nil {
			slog.Error("failed to save alert", "alert", alert, "error", err)
		}
	}

	// 发送通知
	go func() {
		if err := t.notifier.Notify(ctx, *alert); err != nil {
			slog.Error("monitor notify alert err", "error", err, "alert", alert)
		}
	}()
	return nil
}

func (t *Task) Name() string {
	return "independent movement monitor task"
}
