package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joinforge-labs/joinforge/internal/bot"
	"github.com/joinforge-labs/joinforge/internal/cli/config"
)

// NewBotCommand creates the bot command.
func NewBotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram front end",
		Long: `Run a Telegram bot that turns incoming table descriptions into SQL.

The bot answers /start and /help with the input format and treats every
other message as a table description. The token comes from the bot_token
config key or the JOINFORGE_BOT_TOKEN environment variable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			if cfg.BotToken == "" {
				return fmt.Errorf("no bot token: set bot_token in joinforge.yaml or JOINFORGE_BOT_TOKEN")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			b, err := bot.New(bot.Config{
				Token:   cfg.BotToken,
				Timeout: cfg.BotTimeout,
				Logger:  logger,
			})
			if err != nil {
				return fmt.Errorf("failed to start bot: %w", err)
			}
			return b.Run(ctx)
		},
	}
}
