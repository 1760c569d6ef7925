package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"adpilot/internal/adapter/postgres"
	"adpilot/internal/db"
)

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(*cobra.Command, []string) error {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				return err
			}
			a.logger.Info("migrations applied successfully")
			return nil
		},
	}
}

func (a *app) seedCmd() *cobra.Command {
	demo := db.DefaultDemoUser
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo user in the postgres store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.seed(cmd.Context(), demo)
		},
	}
	cmd.Flags().StringVar(&demo.Email, "email", demo.Email, "demo user email")
	cmd.Flags().StringVar(&demo.Password, "password", demo.Password, "demo user password")
	cmd.Flags().StringVar(&demo.FullName, "name", demo.FullName, "demo user full name")
	return cmd
}

func (a *app) seed(ctx context.Context, demo db.DemoUser) error {
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return err
	}
	defer pool.Close()

	id, err := db.Seed(ctx, postgres.NewUserRepository(pool), demo)
	if err != nil {
		return err
	}
	a.logger.Info("demo user ready", slog.String("id", id), slog.String("email", demo.Email))
	return nil
}
