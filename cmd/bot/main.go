package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/docuchat/bot/internal/api"
	"github.com/docuchat/bot/internal/bot"
	"github.com/docuchat/bot/internal/config"
	"github.com/docuchat/bot/internal/extract"
	"github.com/docuchat/bot/internal/gemini"
	"github.com/docuchat/bot/internal/store"
	"github.com/docuchat/bot/internal/telegram"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Local development convenience; deployments set real env vars
	_ = godotenv.Load()

	configPath := os.Getenv("BOT_CONFIG")
	if configPath == "" {
		configPath = "bot.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log.Mode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tg, err := telegram.NewClient(cfg.TelegramToken, cfg.Bot.Debug, log.Named("telegram"))
	if err != nil {
		log.Fatal("connecting to Telegram", zap.Error(err))
	}

	answerer, err := gemini.NewClient(ctx, cfg.GoogleAPIKey, cfg.Gemini.Model, cfg.Gemini.Temperature, log.Named("gemini"))
	if err != nil {
		log.Fatal("creating Gemini client", zap.Error(err))
	}

	docs := store.NewStore()
	handler := bot.NewHandler(docs, extract.NewExtractor(), answerer, tg, cfg.Limits.MaxDocumentBytes, log.Named("bot"))

	// The liveness listener runs on its own goroutine and shares nothing
	// with the polling loop.
	srv := api.NewServer(cfg.Server, Version, log.Named("api"))
	go func() {
		if err := srv.Start(ctx); err != nil {
			log.Error("liveness server stopped", zap.Error(err))
		}
	}()

	log.Info("bot started",
		zap.String("version", Version),
		zap.String("buildTime", BuildTime),
		zap.String("account", tg.Username()),
		zap.String("model", cfg.Gemini.Model),
		zap.String("listen", cfg.Server.Addr()))

	updates := tg.Updates(cfg.Bot.PollTimeout)
	go func() {
		<-ctx.Done()
		tg.Stop()
	}()

	handler.Run(ctx, updates)

	log.Info("bot stopped", zap.Int("activeDocuments", docs.Count()))
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
