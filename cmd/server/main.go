package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/api"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/clients/fetcher"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/repository"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/service"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/broker"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/config"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/logger"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/postgres"
)

const (
	ReadTimeout       = 20 * time.Second
	WriteTimeout      = 20 * time.Second
	IdleTimeout       = 60 * time.Second
	ReadHeaderTimeout = 1 * time.Second
)

// @title GESA Survey API
// @description Street-lighting survey management service
// @version 1.0
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)

	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	adminRepo := repository.NewAdminRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	surveyRepo := repository.NewSurveyRepository(pool)

	producer := broker.NewProducer(l, cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	s := service.New(cfg, adminRepo, sessionRepo, surveyRepo, producer)

	fileFetcher := fetcher.NewClient(cfg.Proxy)

	h := api.NewHandler(s, fileFetcher)
	mw := api.NewMiddleware(s)
	router := api.NewRouter(h, mw)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		l.Info("http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		l.Debug("http server stopped")
	}()

	if cfg.JWT.AccessTokenExpiry > 0 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			ticker := time.NewTicker(cfg.JWT.AccessTokenExpiry)
			defer ticker.Stop()

			l := l.With("job", "delete_expired_sessions")
			for {
				err := sessionRepo.DeleteExpired(ctx)
				if err != nil {
					l.Error(fmt.Sprintf("job failed: %s", err))
				}

				select {
				case <-ctx.Done():
					l.Debug("job stopped by ctx")
					return
				case <-ticker.C:
				}
			}
		}()
	}

	waitSignal(l, cancel, server)
	wg.Wait()
}

func waitSignal(l *slog.Logger, cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	l.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
