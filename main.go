package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NextMind-AI/whatsapp-webhook/config"
	"github.com/NextMind-AI/whatsapp-webhook/openai"
	"github.com/NextMind-AI/whatsapp-webhook/processor"
	"github.com/NextMind-AI/whatsapp-webhook/server"
	"github.com/NextMind-AI/whatsapp-webhook/whatsapp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	appConfig, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	configureLogger(appConfig)

	if err := appConfig.Validate(); err != nil {
		log.Error().Err(err).Msg("One or more required environment variables are not set, refusing to start")
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: appConfig.HTTPTimeout}

	openAIClient := openai.NewClient(
		appConfig.OpenAIKey,
		appConfig.OpenAIBaseURL,
		httpClient,
	)

	whatsAppClient := whatsapp.NewClient(
		appConfig.GraphAPIToken,
		appConfig.GraphAPIURL,
		appConfig.GraphAPIVersion,
		httpClient,
	)

	messageProcessor := processor.NewMessageProcessor(
		openAIClient,
		whatsAppClient,
		appConfig.VerifyToken,
	)

	srv := server.New(messageProcessor, appConfig.ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(appConfig.Port)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
	}
}

func configureLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Err(err).Str("log_level", cfg.LogLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(os.Stdout)
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log.Logger = logger.With().
		Timestamp().
		Str("app", cfg.ServiceName).
		Logger()
}
