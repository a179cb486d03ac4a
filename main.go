package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"notes-backend/config"
	httpserver "notes-backend/http"
	"notes-backend/logging"
	"notes-backend/repository"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	log := logging.New(os.Stdout, "notes-backend")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repo repository.NotesRepository
	if cfg.DatabaseURL != "" {
		if err := repository.Migrate(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
		pg, err := repository.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres init failed")
		}
		defer pg.Close()
		repo = pg
		log.Info().Msg("using postgres repository")
	} else {
		repo = repository.NewMemory()
		log.Info().Msg("using in-memory repository; data will not survive a restart")
	}

	server := httpserver.NewServer(cfg, log, repo)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := server.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Str("version", cfg.Version).Msg("server starting")
	if err := server.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
