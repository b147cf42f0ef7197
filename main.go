package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-pos/config"
	"restaurant-pos/handlers"
	"restaurant-pos/i18n"
	"restaurant-pos/middleware"
	"restaurant-pos/routes"
	"restaurant-pos/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDB(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.SeedDemo {
		if err := seed.Run(ctx, db, logger); err != nil {
			return err
		}
	}

	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(gin.Recovery())

	limiter := middleware.NewLoginLimiter(cfg.LoginPerMin, cfg.LoginBurst)
	go limiter.Run(ctx, time.Minute)

	h := handlers.New(db, logger, middleware.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL))
	err = routes.SetupRoutes(r, h, routes.Options{
		Catalog:       catalog,
		DefaultLocale: cfg.DefaultLocale,
		LoginLimiter:  limiter,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", "http://localhost:"+cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
