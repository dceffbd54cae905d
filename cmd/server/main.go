// @title           File Storage API
// @version         1.0
// @description     Session-cached logins and blob-backed file storage.
// @host            localhost:8080
// @schemes         http
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"magazyn-plikow/internal/api"
	"magazyn-plikow/internal/auth"
	"magazyn-plikow/internal/cache"
	"magazyn-plikow/internal/config"
	"magazyn-plikow/internal/database"
	"magazyn-plikow/internal/files"
	"magazyn-plikow/internal/health"
	"magazyn-plikow/internal/logger"
	"magazyn-plikow/internal/metrics"
	"magazyn-plikow/internal/storage"
	"magazyn-plikow/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"magazyn-plikow/docs"
)

const shutdownGracePeriod = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(cfg.Log.Level, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped with an error")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	dbpool, err := pgxpool.New(ctx, cfg.DB.Source)
	if err != nil {
		return err
	}
	store := database.NewStore(dbpool)
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		return err
	}
	log.Info().Msg("connected to the database")

	if cfg.DB.RunMigrations {
		if err := database.RunMigrations(ctx, dbpool); err != nil {
			return err
		}
	}

	blobs, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	log.Info().Str("driver", cfg.Storage.Driver).Str("bucket", cfg.Storage.Bucket).Msg("blob storage ready")

	issuer, err := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.Algorithm)
	if err != nil {
		return err
	}

	sessions := cache.New[string, string](cfg.Cache.Capacity, cfg.JWT.AccessTokenTTL())
	log.Info().Int("capacity", sessions.Capacity()).Dur("ttl", sessions.Lifetime()).Msg("session cache ready")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)
	appMetrics.TrackSessions(sessions.Len)

	wsHub := websocket.NewHub()
	go wsHub.Run()
	defer wsHub.Stop()

	docs.SwaggerInfo.Host = cfg.AppHost

	server := api.NewServer(cfg, api.Deps{
		Auth:     auth.NewAuthenticator(store, issuer, sessions, cfg.JWT.AccessTokenTTL()),
		Issuer:   issuer,
		Files:    files.NewService(sessions, store, blobs, wsHub),
		Sessions: sessions,
		Health:   health.NewChecker(store),
		Metrics:  appMetrics,
		Hub:      wsHub,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting http server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Warn().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down http server gracefully")
	}
	log.Warn().Msg("http server stopped")

	return nil
}
