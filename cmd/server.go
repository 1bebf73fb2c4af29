package cmd

import (
	"context"
	"errors"
	"fmt"
	"graphdb/api"
	"graphdb/api/router/handlers"
	"graphdb/config"
	"graphdb/logger"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serverPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the REST API server",
	Long: `Starts the REST API server. Graph resources are served under /db/data/,
with /health, /version, /metrics and /swagger/doc.json at the root.
Press Ctrl+C to shut down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("--- Server Command: Run ---")

		portToUse := serverPort
		if !cmd.Flags().Changed("port") {
			portToUse = config.AppConfig.Server.Port
			logger.Info("Server Command: Port flag not set, using config value: %s", portToUse)
		}
		if portToUse == "" {
			logger.Error("Server Command: Port is empty after checking flag and config, defaulting to 7474")
			portToUse = "7474"
		}

		h := &handlers.GraphHandlers{
			Service:      graphService,
			BaseURI:      config.AppConfig.Server.BaseURI,
			MaxBodyBytes: config.AppConfig.Server.MaxBodyBytes,
		}
		server := &http.Server{
			Addr:              ":" + portToUse,
			Handler:           api.NewRouter(h),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("Server Command: Listening on :%s", portToUse)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				return fmt.Errorf("could not start server: %w", err)
			}
		case <-ctx.Done():
			logger.Info("Server Command: Shutdown signal received...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server Command: Graceful shutdown failed: %v", err)
			return err
		}
		logger.Info("Server Command: Gracefully stopped.")
		return nil
	},
}

func init() {
	serverCmd.Flags().StringVarP(&serverPort, "port", "p", "7474", "Port for the server to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
