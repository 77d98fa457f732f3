package app

import (
	"context"

	"github.com/to-goingon/notion-invoice-web/internal/config"
	"github.com/to-goingon/notion-invoice-web/internal/invoice"
	"github.com/to-goingon/notion-invoice-web/internal/logger"
	"github.com/to-goingon/notion-invoice-web/internal/redis"
)

type Infra struct {
	Invoices invoice.Repository
	Redis    *redis.Client // nil when the cache is disabled
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	var repo invoice.Repository = invoice.NewNotionRepository(
		cfg.NotionAPIKey,
		cfg.NotionDatabaseID,
		cfg.NotionItemsDatabaseID,
	)

	logger.Info("notion repository ready", map[string]any{
		"database_id": cfg.NotionDatabaseID,
	})

	var redisClient *redis.Client
	if cfg.CacheEnabled() {
		client, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		redisClient = client
		repo = invoice.NewCachedRepository(repo, client.Client, cfg.InvoiceCacheTTL)

		logger.Info("redis cache ready", map[string]any{
			"addr": cfg.RedisAddr,
			"ttl":  cfg.InvoiceCacheTTL.String(),
		})
	}

	return &Infra{
		Invoices: repo,
		Redis:    redisClient,
	}, nil
}
