package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Skotchmaster/order_management/internal/config"
	pkgdb "github.com/Skotchmaster/order_management/internal/db"
	"github.com/Skotchmaster/order_management/internal/httpserver"
	"github.com/Skotchmaster/order_management/internal/logging"
	"github.com/Skotchmaster/order_management/internal/repo"
	"github.com/Skotchmaster/order_management/internal/service"
)

func main() {
	cfg := config.Load()

	reset := flag.Bool("reset", cfg.ResetOnStart, "drop all tables and reload fixtures on start")
	flag.Parse()

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustPositive(cfg.ServerPort, "SERVER_PORT")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		log.Fatalf("db open: %v", err)
	}

	repo := &repo.GormRepo{DB: db}
	svc := &service.CatalogService{Repo: repo}

	if err := svc.Bootstrap(ctx, *reset, logger); err != nil {
		cancel()
		log.Fatalf("db bootstrap: %v", err)
	}
	cancel()

	e := httpserver.New(&httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Svc: svc},
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := pkgdb.Close(db); err != nil {
		logger.Error("db close error", "error", err)
	}

	logger.Info("shutdown complete")
}
