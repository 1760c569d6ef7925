package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adpilot/internal/adapter/googleads"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/imagegen"
	"adpilot/internal/adapter/imaging"
	"adpilot/internal/adapter/llm"
	"adpilot/internal/adapter/memory"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/adapter/webcontent"
	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
	"adpilot/internal/httpclient"
)

type stores struct {
	users port.UserRepository
	runs  port.RunRepository
	close func()
}

// openStores returns the repositories selected by STORE_DRIVER. The
// postgres store optionally applies migrations first.
func (a *app) openStores(ctx context.Context) (*stores, error) {
	if a.cfg.Store.Backend() == configs.StoreMemory {
		a.logger.Warn("using in-memory store; users and runs are lost on restart")
		return &stores{users: memory.NewUserRepository(), runs: memory.NewRunRepository(), close: func() {}}, nil
	}

	if a.cfg.Psql.RunMigrations {
		if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
			a.logger.Error("migration error", slog.Any("error", err))
		} else {
			a.logger.Info("migrations applied successfully")
		}
	}
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return &stores{
		users: postgres.NewUserRepository(pool),
		runs:  postgres.NewRunRepository(pool),
		close: pool.Close,
	}, nil
}

func (a *app) agentSettings() (usecase.AgentSettings, error) {
	ac := a.cfg.Agent
	label, ok := domain.ParseContentLabel(ac.ContentExclusion)
	if !ok {
		return usecase.AgentSettings{}, fmt.Errorf("unknown content exclusion %q", ac.ContentExclusion)
	}
	return usecase.AgentSettings{
		WorkDir:            ac.WorkDir,
		ContentExclusion:   label,
		TargetCPAMicros:    ac.TargetCPAMicros,
		AdGroupName:        ac.AdGroupName,
		CallToAction:       ac.CallToAction,
		LongHeadline:       ac.LongHeadline,
		AudienceExclusions: ac.AudienceExclusions,
	}, nil
}

func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	settings, err := a.agentSettings()
	if err != nil {
		return err
	}
	st, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer st.close()

	fetcher := webcontent.New(httpclient.New(httpclient.Options{
		Timeout:  cfg.Fetch.Timeout,
		RetryMax: cfg.Fetch.RetryMax,
		Logger:   logger,
	}), cfg.Fetch, logger)
	llmClient := llm.New(cfg.LLM, fetcher, httpclient.New(httpclient.Options{Timeout: cfg.LLM.Timeout}), logger)
	images, err := imagegen.New(ctx, cfg.ImageGen, httpclient.New(httpclient.Options{Timeout: cfg.ImageGen.Timeout}), logger)
	if err != nil {
		return fmt.Errorf("image generator: %w", err)
	}
	ads := googleads.New(ctx, cfg.GoogleAds, logger)

	agent := usecase.NewAgent(usecase.AgentDeps{
		Ads:         ads,
		Exclusions:  ads,
		Assistant:   llmClient,
		Recommender: llmClient,
		Images:      images,
		Resizer:     imaging.Resizer{},
	}, settings, logger)
	campaigns := usecase.NewCampaignUseCase(agent, st.runs, cfg.GoogleAds.CustomerID, logger)
	auth := usecase.NewAuthUseCase(st.users)

	handler := httpadapter.NewHandler(campaigns, auth, cfg.HTTP.AllowedOrigins, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case value := <-quit:
		a.exitCode = 128 + int(value.(syscall.Signal))
	case runErr = <-serveErr:
		logger.Error("server error", slog.Any("error", runErr))
	}

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return runErr
}
