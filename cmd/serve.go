package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toyinlola/fmtai/pkg/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the format API over HTTP",
	Long: `Serve exposes POST /api/format, GET /api/languages and GET /healthz.

The request body of /api/format is {"code", "language", "config"}; config
fields left out take the values from the format section of .fmtai.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appCfg
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}

		f, err := buildFormatter(cfg)
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		if cfg.AI.APIKey() == "" {
			slog.Warn("API key not set, format requests will fail", "env", cfg.AI.APIKeyEnv)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(f, cfg.Format).ListenAndServe(ctx, cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}
