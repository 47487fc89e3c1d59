package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mymmrac/telego"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/bot"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/config"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/crash"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/handler"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/jobs"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/service"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/session"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/storage"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/tokens"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/web"
)

func main() {
	defer crash.RecoverWithStackAndExit("main")

	configPath := flag.String("config", "configs/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Setup(cfg); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	if err := storage.Initialize(cfg); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	logger.Infof("Database connection established")

	messageRepo := storage.NewMessageRepository(storage.GetDB())
	blacklistRepo := storage.NewBlacklistRepository(storage.GetDB())
	if err := messageRepo.MigrateTable(); err != nil {
		logger.Fatalf("Failed to migrate messages table: %v", err)
	}
	if err := blacklistRepo.MigrateTable(); err != nil {
		logger.Fatalf("Failed to migrate blacklist table: %v", err)
	}

	inbox := service.NewInbox(messageRepo)
	blocker := service.NewBlocker(blacklistRepo)
	tokenStore := tokens.NewStore()
	sessions := session.NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	botService, webhookServer, err := bot.Initialize(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize bot: %v", err)
	}

	h := handler.New(botService.Bot, cfg, inbox, blocker, tokenStore, sessions)
	h.Register(botService.Handler)

	crash.SafeGoroutine("webhook-server", func() {
		if err := webhookServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Webhook server error: %v", err)
		}
	})

	webServer := web.NewServer(cfg, tokenStore)
	crash.SafeGoroutine("web-server", func() {
		if err := webServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Web server error: %v", err)
		}
	})

	var digest *jobs.Scheduler
	if cfg.Digest.Enabled {
		digest = jobs.NewScheduler(cfg, inbox, func(chatID int64, text string) {
			_, err := botService.Bot.SendMessage(ctx, &telego.SendMessageParams{
				ChatID: telego.ChatID{ID: chatID},
				Text:   text,
			})
			if err != nil {
				logger.Warningf("Error sending digest: %v", err)
			}
		})
		if err := digest.Start(cfg.Digest.Schedule); err != nil {
			logger.Fatalf("Failed to start digest scheduler: %v", err)
		}
	}

	// Give the HTTP servers time to bind before processing updates
	time.Sleep(500 * time.Millisecond)
	logger.Infof("Servers are ready, starting bot handler")

	crash.SafeGoroutine("bot-handler", func() {
		botService.Start()
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	logger.Infof("Received signal: %v, shutting down", sig)

	botService.Stop()
	if digest != nil {
		digest.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := webhookServer.Shutdown(shutdownCtx); err != nil {
		logger.Warningf("Webhook server shutdown error: %v", err)
	}
	if err := webServer.Shutdown(shutdownCtx); err != nil {
		logger.Warningf("Web server shutdown error: %v", err)
	}

	logger.Infof("Server gracefully stopped")
}
