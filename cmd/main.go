package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"adpilot/internal/config"
)

// app carries what every subcommand needs once the root command has loaded
// configuration and built the logger.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	exitCode int
}

// main is the entry point of adpilot. The root command runs the HTTP server;
// the migrate and seed subcommands prepare the database. A termination
// signal stops the server and exits with 128 + signal number.
func main() {
	a := &app{}
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(a.exitCode)
		}
	}()

	if err := a.rootCmd().ExecuteContext(context.Background()); err != nil {
		a.exitCode = 1
		if a.logger != nil {
			a.logger.Error("command failed", slog.Any("error", err))
		} else {
			slog.Error("command failed", slog.Any("error", err))
		}
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "adpilot",
		Short:         "Builds Google Ads display campaigns from a landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.serve(cmd.Context())
			},
		},
		a.migrateCmd(),
		a.seedCmd(),
	)
	return root
}

// setup loads configuration from environment variables and builds the
// structured logger.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	var handler slog.Handler
	level := cfg.Log.SlogLevel()
	switch cfg.Log.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	a.logger = slog.New(handler).With(slog.String("env", cfg.Env))
	return nil
}
