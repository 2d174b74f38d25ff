// Package main runs the taskapp API as a plain HTTP server for local development.
// Identity is taken from the X-User-Id and X-User-Email headers.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskapp/taskapp/internal/app"
	"github.com/taskapp/taskapp/internal/config"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/logger"
	"github.com/taskapp/taskapp/internal/server"
)

func main() {
	cfg := config.MustLoadAPI()
	log := logger.Initialize(constants.Development, cfg.GetLogLevel())

	svc, err := app.Initialize(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to initialize services", "error", err)
		os.Exit(1)
	}

	router := server.NewRouter(svc, cfg.RequestTimeout, cfg.CORSAllowedOrigins,
		server.WithIdentityResolver(server.TrustedHeaderIdentity{}))

	port := cfg.Port
	if port == 0 {
		port = constants.DefaultDevServerPort
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router.Handler(),
		ReadTimeout:  constants.ServerReadTimeout,
		WriteTimeout: constants.ServerWriteTimeout,
		IdleTimeout:  constants.ServerIdleTimeout,
	}

	go func() {
		log.Info("starting local server (Ctrl+C to stop)", "port", port)
		log.Info(fmt.Sprintf("health check: http://localhost:%d/api/v1/health", port))
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Error("failed to start server", "error", serveErr)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
