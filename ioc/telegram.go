package ioc

import (
	"github.com/ftarasenko/driftwatch/internal/service/monitor"
	"github.com/ftarasenko/driftwatch/internal/service/notification"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
)

// InitTelegramNotifier 未配置bot token时返回nil, 调用方回退到控制台通知
func InitTelegramNotifier() monitor.Notifier {
	type Config struct {
		BotToken string `mapstructure:"bot_token"`
		ChatID   int64  `mapstructure:"chat_id"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("notify.telegram", &cfg); err != nil {
		panic(err)
	}
	if cfg.BotToken == "" {
		return nil
	}
	if cfg.ChatID == 0 {
		panic("telegram chat_id is required when bot_token is set")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		panic(err)
	}
	return notification.NewTelegramNotifier(bot, cfg.ChatID)
}
