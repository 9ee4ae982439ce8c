package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/onegoal/tracker/internal/api"
	"github.com/onegoal/tracker/internal/logging"
	"github.com/onegoal/tracker/internal/sqlite"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST API",
	Long:  `Serve the tracker REST API on the configured address until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(cfg.Development)
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.SentryDSN != "" {
			if err := sentry.Init(sentry.ClientOptions{
				Dsn:         cfg.SentryDSN,
				Environment: cfg.Environment,
			}); err != nil {
				log.Warn("sentry init failed", zap.Error(err))
			} else {
				defer sentry.Flush(2 * time.Second)
			}
		}

		store, err := sqlite.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer store.Close()

		srv := api.New(cfg, store, log)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		errCh := make(chan error, 1)
		go func() {
			log.Info("server starting",
				zap.String("addr", cfg.Addr),
				zap.String("environment", cfg.Environment),
				zap.String("db", cfg.DBPath()),
			)
			errCh <- srv.Listen()
		}()

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		log.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Error("shutdown error", zap.Error(err))
			return err
		}
		log.Info("server stopped")
		return nil
	},
}
