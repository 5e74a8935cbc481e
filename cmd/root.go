// Package cmd implements the fmtai CLI commands using Cobra.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/toyinlola/fmtai/pkg/cli"
)

var (
	cfgFile string
	envFile string
	verbose bool
	format  string
	output  string

	// appCfg is loaded once per invocation before any command runs.
	appCfg *cli.Config
	logOut io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "fmtai",
	Short: "AI-assisted code formatter",
	Long: `fmtai reformats source code by asking a chat-completion model
(DeepSeek by default) to apply an indentation, line width, naming and
style-guide configuration, then reports what changed line by line.

The API key is read from DEEPSEEK_API_KEY (or the variable named by
ai.api_key_env in .fmtai.yml). A .env file in the working directory is
loaded automatically.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.LoadDotEnv(envFile); err != nil {
			return err
		}
		cfg, err := cli.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		appCfg = cfg
		return setupLogging(cfg.Log)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logOut != nil {
			return logOut.Close()
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns any error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: .fmtai.yml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load if present")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "report format (terminal|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "write the report to file instead of stdout")
}

// setupLogging installs the default slog handler on stderr, mirrored to a
// rotated file when lc.File is set.
func setupLogging(lc cli.LogConfig) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if lc.File != "" {
		file := &lumberjack.Logger{
			Filename:   lc.File,
			MaxSize:    lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAge:     lc.MaxAgeDays,
			Compress:   lc.Compress,
		}
		logOut = file
		w = io.MultiWriter(os.Stderr, file)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}
