package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codefolio/internal/config"
	"codefolio/internal/controller"
	"codefolio/internal/db"
	"codefolio/internal/logger"
	"codefolio/internal/repository"
	"codefolio/internal/server"
	"codefolio/internal/service"
	"codefolio/internal/session"
	"codefolio/internal/telemetry"
	"codefolio/internal/validator"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdownTelemetry(ctx); err != nil {
			log.Printf("error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	if err := validator.Register(); err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}

	pool, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer pool.Close()

	if err := db.InitSchema(pool); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}
	slog.Info("database ready", "path", cfg.DatabasePath)

	var store session.Store
	if cfg.RedisAddr != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb)
		slog.Info("session store", "backend", "redis", "addr", cfg.RedisAddr)
	} else {
		sqliteStore := session.NewSQLiteStore(pool)
		if err := sqliteStore.CleanupExpired(ctx); err != nil {
			slog.Warn("failed to cleanup expired sessions", "error", err)
		}
		store = sqliteStore
		slog.Info("session store", "backend", "sqlite")
	}
	sessions := session.NewManager(store, cfg.SessionSecret, cfg.SessionTTL)

	userRepo := repository.NewUserRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)

	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo)
	portfolioService := service.NewPortfolioService(userRepo, projectRepo)

	srv := server.New(
		cfg.TemplatesGlob,
		sessions,
		controller.NewAuthController(userService, sessions),
		controller.NewProjectController(projectService),
		controller.NewPortfolioController(portfolioService),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),

		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("http server started", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	slog.Info("server exiting")
}
