package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veaveberg/qreate/internal/config"
	"github.com/veaveberg/qreate/internal/handlers"
	"github.com/veaveberg/qreate/internal/middleware"
	"github.com/veaveberg/qreate/internal/qr"
	"github.com/veaveberg/qreate/internal/render"
	"github.com/veaveberg/qreate/internal/vector"
	"github.com/veaveberg/qreate/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "[main] failed to load config")
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))

	pipeline := render.NewPipeline(qr.NewEncoder(), vector.NewScope())
	handlers.New(pipeline, cfg).Register(r)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info(log.Fields{"addr": srv.Addr, "env": cfg.AppEnv}, "qreate listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(log.Fields{"error": err.Error()}, "[main] server stopped")
		}
	}()

	<-sigChan
	log.Info(nil, "Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(log.Fields{"error": err.Error()}, "[main] graceful shutdown failed")
	}
}
