package notifier

import (
	"context"
	"fmt"
	"strings"

	"go-job-alert/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const ChannelTelegram = "telegram"

// BotAPI is the part of *tgbotapi.BotAPI the notifier uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	cfg    config.TelegramConfig
	newBot func(token string) (BotAPI, error)
}

func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		cfg: cfg,
		newBot: func(token string) (BotAPI, error) {
			return tgbotapi.NewBotAPI(token)
		},
	}
}

// WithBot skips the getMe handshake and uses bot directly.
func (n *TelegramNotifier) WithBot(bot BotAPI) *TelegramNotifier {
	n.newBot = func(string) (BotAPI, error) { return bot, nil }
	return n
}

func (n *TelegramNotifier) Name() string {
	return ChannelTelegram
}

func (n *TelegramNotifier) Notify(ctx context.Context, msg Message) Result {
	if !n.cfg.Configured() {
		return Result{Channel: ChannelTelegram, Status: NotConfigured}
	}

	bot, err := n.newBot(n.cfg.Token)
	if err != nil {
		return Result{Channel: ChannelTelegram, Status: Failed, Err: fmt.Errorf("init telegram bot: %w", err)}
	}

	text := fmt.Sprintf("📋 *%s*\n✅ Found %d new jobs\n📎 %s",
		escapeMarkdown(msg.Subject), msg.Count, escapeMarkdown(msg.Body))
	m := tgbotapi.NewMessage(n.cfg.ChatID, text)
	m.ParseMode = "MarkdownV2"
	if _, err := bot.Send(m); err != nil {
		return Result{Channel: ChannelTelegram, Status: Failed, Err: fmt.Errorf("send summary: %w", err)}
	}

	for _, path := range msg.Attachments {
		if ctx.Err() != nil {
			return Result{Channel: ChannelTelegram, Status: Failed, Err: ctx.Err()}
		}
		doc := tgbotapi.NewDocument(n.cfg.ChatID, tgbotapi.FilePath(path))
		if _, err := bot.Send(doc); err != nil {
			return Result{Channel: ChannelTelegram, Status: Failed, Err: fmt.Errorf("send %s: %w", path, err)}
		}
	}

	return Result{Channel: ChannelTelegram, Status: Sent}
}

var markdownReplacer = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
	")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
	"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
	"}", "\\}", ".", "\\.", "!", "\\!",
)

// escapeMarkdown escapes every MarkdownV2 control character.
func escapeMarkdown(text string) string {
	return markdownReplacer.Replace(text)
}
