package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/desktop/internal/config"
	"github.com/robalobadob/wordle/apps/desktop/internal/settings"
	"github.com/robalobadob/wordle/apps/desktop/internal/ui"
	"github.com/robalobadob/wordle/apps/desktop/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(os.Getenv("WORDLE_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	src, closeSrc, err := words.OpenSource(cfg.Words.CorpusDB, cfg.Words.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open word source")
	}
	defer closeSrc()
	corpus := words.NewCorpus(src, cfg.Words.TopN)

	store, err := openSettingsStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open settings store")
	}

	log.Info().Str("backend", cfg.Settings.Backend).Msg("starting wordle")
	if err := ui.Run(context.Background(), cfg, settings.NewManager(store, corpus)); err != nil {
		log.Fatal().Err(err).Msg("wordle exited")
	}
}

func openSettingsStore(cfg *config.Config) (settings.Store, error) {
	if cfg.Settings.Backend == config.BackendGData {
		return settings.NewGDataStore(cfg.Settings.AppName)
	}
	return settings.NewFileStore(cfg.Settings.File), nil
}
