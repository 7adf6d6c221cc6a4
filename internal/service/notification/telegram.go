package notification

import (
	"context"
	"fmt"

	"github.com/ftarasenko/driftwatch/internal/service/monitor"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var _ monitor.Notifier = (*TelegramNotifier)(nil)

// TelegramNotifier 通过telegram bot推送告警
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
	}
}

func (n *TelegramNotifier) Notify(ctx context.Context, alert monitor.Alert) error {
	text := fmt.Sprintf("⚠️ %s independent movement\n"+
		"change: %s%% over %s\n"+
		"%s: %s, %s: %s",
		alert.TargetSymbol,
		alert.IndependentChange.StringFixed(4), alert.WindowElapsed,
		alert.InfluenceSymbol, alert.InfluencePrice,
		alert.TargetSymbol, alert.TargetPrice)
	if alert.Commentary != "" {
		text += "\n\n" + alert.Commentary
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
