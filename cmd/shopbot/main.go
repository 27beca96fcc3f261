package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	chatbot "github.com/NextMind-AI/shopbot-go"
	"github.com/NextMind-AI/shopbot-go/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultConfigFile = "config/default.yaml"

func main() {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = defaultConfigFile
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal().Err(err).Str("config_file", configFile).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &log.Logger

	bot, err := chatbot.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create chatbot")
	}

	go func() {
		if err := bot.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bot.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}
