// cmd/apiserver/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/aleka07/welcome-world/pkg/api"
	"github.com/aleka07/welcome-world/pkg/config"
	"github.com/aleka07/welcome-world/pkg/logging"
	"github.com/aleka07/welcome-world/pkg/server"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up logging")
	}

	if err := run(cfg, logger, shutdownSignals()); err != nil {
		logger.WithError(err).Fatal("server error")
	}
	logger.Info("application shutdown finished")
}

// shutdownSignals delivers SIGINT and SIGTERM.
func shutdownSignals() <-chan os.Signal {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	return shutdown
}

// run binds, serves, and blocks until the server fails or a signal arrives.
func run(cfg config.Config, logger *logrus.Logger, shutdown <-chan os.Signal) error {
	router := api.NewRouter(api.NewAPI(logger), logger)

	srv := server.New(router, server.Options{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.ShutdownTimeout,
		Logger:          logger,
	})

	// Bind failure is fatal before anything is served.
	if err := srv.Listen(); err != nil {
		return err
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Serve()
	}()

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		logger.WithField("signal", sig.String()).Info("shutdown signal received, starting graceful shutdown")
		if err := srv.Shutdown(context.Background()); err != nil {
			return err
		}
		return <-serverErrors
	}
}
