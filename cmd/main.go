package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/slientgoat/gl-id-generator/internal/config"
	"github.com/slientgoat/gl-id-generator/internal/generator"
	"github.com/slientgoat/gl-id-generator/internal/handler"
	"github.com/slientgoat/gl-id-generator/pkg/jwt"
	pkglog "github.com/slientgoat/gl-id-generator/pkg/log"
	"github.com/slientgoat/gl-id-generator/pkg/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "gl-id-generator",
	})
	logger := pkglog.L()

	logger.Info().Msg("starting gl-id-generator")

	// Build the counter registry and pre-register configured namespaces.
	registry := generator.NewRegistry()
	for _, namespace := range cfg.Namespaces {
		registry.Init(namespace)
		logger.Info().Str(pkglog.FieldNamespace, namespace).Msg("namespace registered")
	}

	// Optional bearer auth for calling services.
	var auth *middleware.Auth
	if cfg.Auth.Enabled {
		tokens, err := jwt.NewManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create token manager")
		}
		auth = middleware.NewAuth(tokens)
		logger.Info().Str("issuer", cfg.Auth.Issuer).Msg("bearer auth enabled")
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register routes
	httpHandler := handler.NewHandler(registry, auth)
	httpHandler.RegisterRoutes(r)

	// Start server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("gl-id-generator stopped")
}
