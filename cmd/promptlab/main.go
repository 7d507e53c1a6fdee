// Package main provides the promptlab server entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/thebtf/promptlab/internal/config"
	"github.com/thebtf/promptlab/internal/library"
	"github.com/thebtf/promptlab/internal/server"
	"github.com/thebtf/promptlab/internal/store"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	addr := flag.String("addr", "", "Listen address (overrides PROMPTLAB_ADDR)")
	envFile := flag.String("env", ".env", "Path to optional .env file")
	libraryPath := flag.String("library", "", "Path to YAML seed library (overrides LIBRARY_PATH)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *libraryPath != "" {
		cfg.LibraryPath = *libraryPath
	}

	st := store.New(store.Options{
		Cap:       cfg.MaxVersionsPerPrompt,
		TagLimits: cfg.TagLimits(),
	})

	if cfg.LibraryPath != "" {
		lib, err := library.Load(cfg.LibraryPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.LibraryPath).Msg("Failed to load seed library")
		}
		if err := library.Seed(st, lib); err != nil {
			log.Fatal().Err(err).Str("path", cfg.LibraryPath).Msg("Failed to seed store")
		}
		prompts, collections, _ := st.Counts()
		log.Info().Int("prompts", prompts).Int("collections", collections).Msg("Seeded store from library")
	}

	svc := server.New(st, server.Options{
		Version:        Version,
		AllowedOrigins: cfg.AllowedOrigins(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", cfg.Addr).
			Str("version", Version).
			Str("max_versions_per_prompt", cfg.MaxVersionsPerPrompt.String()).
			Msg("Starting promptlab server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
