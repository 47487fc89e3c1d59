// Package bot wires the Telegram bot to its webhook transport.
package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/config"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
)

// Service bundles the bot client with its update handler
type Service struct {
	Bot     *telego.Bot
	Handler *th.BotHandler
}

// Start starts processing updates, blocking until Stop
func (s *Service) Start() {
	s.Handler.Start()
}

// Stop stops the update handler
func (s *Service) Stop() {
	s.Handler.Stop()
}

// Initialize creates the bot, registers its command menu and sets up
// the webhook transport.
func Initialize(ctx context.Context, cfg *config.Config) (*Service, *WebhookServer, error) {
	if cfg.Bot.Token == "" {
		return nil, nil, fmt.Errorf("bot token is required")
	}

	bot, err := telego.NewBot(cfg.Bot.Token)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	botUser, err := bot.GetMe(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get bot info: %w", err)
	}
	logger.Infof("Authorized on account %s", botUser.Username)

	setCommands(ctx, bot)

	// Clear any stale webhook before registering ours
	if err := bot.DeleteWebhook(ctx, &telego.DeleteWebhookParams{}); err != nil {
		return nil, nil, fmt.Errorf("failed to delete existing webhook: %w", err)
	}

	secretToken := "kosmos_webhook_" + cfg.Bot.Token[len(cfg.Bot.Token)-6:]

	bh, server, err := SetupWebhook(ctx, bot, cfg.Bot.Webhook, secretToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup webhook: %w", err)
	}

	return &Service{Bot: bot, Handler: bh}, server, nil
}

func setCommands(ctx context.Context, bot *telego.Bot) {
	commands := []telego.BotCommand{
		{Command: "start", Description: "Открыть панель / отправить сообщение"},
		{Command: "blacklist", Description: "Чёрный список"},
	}

	err := bot.SetMyCommands(ctx, &telego.SetMyCommandsParams{Commands: commands})
	if err != nil {
		logger.Warningf("Failed to set bot commands: %v", err)
	}
}
