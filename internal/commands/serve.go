package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"mizan/internal/app"
	"mizan/internal/config"
	"mizan/internal/logger"
	"mizan/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the accounting HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel)

			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer application.Close(context.Background())

			handler := server.NewHandler(
				application.Chart,
				application.Entries,
				application.TrialBalance,
				application.Closing,
				application.Balances,
			)

			srv := &http.Server{
				Addr:         cfg.ServerAddress,
				Handler:      server.SetupRouter(handler),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.L().Infof("Server is running on %s", cfg.ServerAddress)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt)

			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			logger.L().Info("Shutting down server...")
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			logger.L().Info("Server exited gracefully")
			return nil
		},
	}
}
