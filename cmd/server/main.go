// Package main is the process entry point, grounded on the teacher's
// cmd/server/main.go (database init, then server.Run), with zerolog
// replacing the teacher's bare log.Printf per SPEC_FULL.md §9.1.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ricferreira/roster-optimizer/internal/api"
	"github.com/ricferreira/roster-optimizer/internal/assistant"
	"github.com/ricferreira/roster-optimizer/internal/config"
	"github.com/ricferreira/roster-optimizer/internal/history"
	"github.com/ricferreira/roster-optimizer/internal/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	store, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open history database")
	}
	defer store.Close()
	log.Info().Str("path", cfg.HistoryDBPath).Msg("history database ready")

	orchestrator := roster.NewOrchestrator(store, time.Duration(cfg.SolveTimeoutSeconds)*time.Second, log.Logger)
	explainer := assistant.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if explainer == nil {
		log.Info().Msg("infeasibility explainer disabled (no OPENAI_API_KEY)")
	}

	server := api.NewServer(orchestrator, explainer, cfg.CORSAllowedOrigins)
	log.Info().Str("addr", cfg.ListenAddr()).Msg("starting server")
	if err := server.Run(cfg.ListenAddr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
