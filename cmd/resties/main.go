package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resties/internal/auth"
	"resties/internal/config"
	"resties/internal/db"
	"resties/internal/gmaps"
	httpx "resties/internal/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	log.Logger = logger

	cfg, _ := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	maps := gmaps.NewClient(cfg.GoogleAPIKey)
	r := httpx.NewRouter(cfg, gdb, jwtSvc, maps, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
