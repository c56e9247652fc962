// Package bot is the Telegram front end: it forwards incoming message text
// to the SQL generator and replies with the result as a fenced code block.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// usageMessage answers /start and /help.
const usageMessage = "Hi! To build a SQL query, describe one table per line:\n\n" +
	"table \\[ - alias ] : \\[ columns ] : \\[ join condition ]\n\n" +
	"\U0001F539 *Important:*\n" +
	"- The first table must *not* have a join condition.\n" +
	"- Every table after it must have one.\n\n" +
	"Example line:\n" +
	"`customers - c : name age : c.id = orders.customer_id`\n\n" +
	"\U0001F4DD *Full example:*\n" +
	"`customers - c : name age\norders - o : order_date : c.id = o.customer_id`"

// Config holds the bot's dependencies. Nothing here is process-global: the
// token, timeout, and logger are all injected.
type Config struct {
	Token string
	// Timeout is the long-poll timeout in seconds.
	Timeout int
	Logger  *slog.Logger
}

// Bot is the Telegram message handler.
type Bot struct {
	api     *tgbotapi.BotAPI
	timeout int
	logger  *slog.Logger
}

// New authenticates against the Telegram API and returns a ready Bot.
func New(cfg Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth failed: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Bot{
		api:     api,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Run long-polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot started", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.timeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return nil
		case update := <-updates:
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	msg := update.Message

	var reply string
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			reply = usageMessage
		default:
			reply = fmt.Sprintf("Unknown command /%s; try /help.", msg.Command())
		}
	} else {
		reply = replyFor(msg.Text)
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(out); err != nil {
		b.logger.Error("failed to send reply", "chat_id", msg.Chat.ID, "error", err)
	}
}
