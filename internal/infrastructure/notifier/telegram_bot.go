package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// StartupReport — состояние компонентов после загрузки на старте.
type StartupReport struct {
	AppName       string
	AppVersion    string
	DatasetSource string
	Locations     int
	ModelSource   string
	ModelReady    bool
}

// Degraded — сервис поднялся, но без каталога или без модели.
func (r StartupReport) Degraded() bool {
	return r.Locations == 0 || !r.ModelReady
}

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64, opts ...telego.BotOption) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (b *TelegramBot) SendStartupAlert(ctx context.Context, report StartupReport) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "⚠️ <b>%s %s started degraded</b>\n\n",
		html.EscapeString(report.AppName), html.EscapeString(report.AppVersion))

	if report.Locations == 0 {
		fmt.Fprintf(&sb, "📍 <b>Locations:</b> empty (%s)\n", html.EscapeString(report.DatasetSource))
	} else {
		fmt.Fprintf(&sb, "📍 <b>Locations:</b> %d\n", report.Locations)
	}

	if report.ModelReady {
		sb.WriteString("🧮 <b>Model:</b> loaded\n")
	} else {
		fmt.Fprintf(&sb, "🧮 <b>Model:</b> unavailable (%s)\n", html.EscapeString(report.ModelSource))
	}

	msg := tu.Message(
		tu.ID(b.chatID),
		sb.String(),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
