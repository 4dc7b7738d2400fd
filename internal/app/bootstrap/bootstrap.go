package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	chatservice "brandloop/contexts/community-experience/chat-service"
	chatpostgres "brandloop/contexts/community-experience/chat-service/adapters/postgres"
	chatworkers "brandloop/contexts/community-experience/chat-service/application/workers"
	guardpostgres "brandloop/contexts/identity-access/access-guard/adapters/postgres"
	guardapp "brandloop/contexts/identity-access/access-guard/application"
	campaignservice "brandloop/contexts/marketplace/campaign-service"
	campaignpostgres "brandloop/contexts/marketplace/campaign-service/adapters/postgres"
	engagementservice "brandloop/contexts/marketplace/engagement-service"
	chatadapter "brandloop/contexts/marketplace/engagement-service/adapters/chat"
	engagementpostgres "brandloop/contexts/marketplace/engagement-service/adapters/postgres"
	engagementports "brandloop/contexts/marketplace/engagement-service/ports"
	submissionservice "brandloop/contexts/marketplace/submission-service"
	engagementadapter "brandloop/contexts/marketplace/submission-service/adapters/engagement"
	submissionpostgres "brandloop/contexts/marketplace/submission-service/adapters/postgres"
	"brandloop/internal/platform/cache"
	"brandloop/internal/platform/config"
	"brandloop/internal/platform/db"
	"brandloop/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server      *httpserver.Server
	postgres    *db.Postgres
	invalidator *cache.RedisInvalidator
	logger      *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	threadSweep  chatworkers.ThreadCleanup
	sweepEnabled bool
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	var invalidator engagementports.ViewInvalidator = cache.NoopInvalidator{}
	var redisInvalidator *cache.RedisInvalidator
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		redisInvalidator, err = cache.NewRedisInvalidator(cfg.RedisAddr, cfg.InvalidationChannel)
		if err != nil {
			_ = pg.Close()
			return nil, err
		}
		invalidator = redisInvalidator
	}

	guardRepo := guardpostgres.NewRepository(pg.DB, logger)
	guard := guardapp.Guard{
		Profiles:  guardRepo,
		Ownership: guardRepo,
		Logger:    logger,
	}

	chatRepo := chatpostgres.NewRepository(pg.DB, logger)
	chatModule := chatservice.NewModule(chatservice.Dependencies{
		Repository: chatRepo,
		Clock:      chatpostgres.SystemClock{},
		IDGen:      chatpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	campaignRepo := campaignpostgres.NewRepository(pg.DB, logger)
	campaignModule := campaignservice.NewModule(campaignservice.Dependencies{
		Campaigns:   campaignRepo,
		Guard:       guard,
		Clock:       campaignpostgres.SystemClock{},
		IDGenerator: campaignpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	engagementRepo := engagementpostgres.NewRepository(pg.DB, logger)
	engagementModule := engagementservice.NewModule(engagementservice.Dependencies{
		Engagements: engagementRepo,
		Contracts:   engagementRepo,
		Campaigns:   campaignRepo,
		Guard:       guard,
		Chat:        chatadapter.Gateway{Chat: chatModule.Service},
		Invalidator: invalidator,
		Clock:       engagementpostgres.SystemClock{},
		IDGenerator: engagementpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	submissionRepo := submissionpostgres.NewRepository(pg.DB, logger)
	submissionModule := submissionservice.NewModule(submissionservice.Dependencies{
		Submissions: submissionRepo,
		Directory:   engagementadapter.Directory{Engagements: engagementRepo},
		Guard:       guard,
		Clock:       submissionpostgres.SystemClock{},
		IDGenerator: submissionpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(
		campaignModule,
		engagementModule,
		submissionModule,
		chatModule,
		cfg.JWTSecret,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:      server,
		postgres:    pg,
		invalidator: redisInvalidator,
		logger:      logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	chatRepo := chatpostgres.NewRepository(pg.DB, logger)
	chatModule := chatservice.NewModule(chatservice.Dependencies{
		Repository: chatRepo,
		Clock:      chatpostgres.SystemClock{},
		IDGen:      chatpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	return &WorkerApp{
		postgres: pg,
		threadSweep: chatworkers.ThreadCleanup{
			Chat:   chatModule.Service,
			Logger: logger,
		},
		sweepEnabled: cfg.EnableChatCleanup,
		pollInterval: cfg.ChatCleanupInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.invalidator != nil {
		_ = a.invalidator.Close()
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"chat_cleanup_enabled", w.sweepEnabled,
	)

	for {
		if w.sweepEnabled {
			if err := w.threadSweep.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
