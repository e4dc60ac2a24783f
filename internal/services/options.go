package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/queries/facet_metadata"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/queries/search_catalog"
	"github.com/greenharvest/storefront-catalog/internal/app/catalog/repo"
	"github.com/greenharvest/storefront-catalog/internal/config"
	"github.com/greenharvest/storefront-catalog/internal/pkg/clock"
	httphandler "github.com/greenharvest/storefront-catalog/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	RedisClient    *redis.Client
	CatalogHandler *httphandler.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) (*ServiceOptions, error) {
	// 1. Backing clients
	spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 2. Store adapters; the ledger reads through the Redis TTL cache
	catalogStore := repo.NewCatalogStore(spannerClient)
	discountStore := repo.NewDiscountStore(spannerClient)
	ledger := repo.NewCachedSalesLedger(
		repo.NewSalesLedger(spannerClient),
		redisClient,
		cfg.Catalog.RankCacheTTL,
		log,
	)

	// 3. Query use cases
	clk := clock.NewRealClock()
	searchQuery := search_catalog.NewQuery(
		catalogStore,
		discountStore,
		ledger,
		clk,
		log,
		cfg.Catalog.TopSellingLimit,
	)
	filtersQuery := facet_metadata.NewQuery(catalogStore)

	// 4. HTTP handler
	catalogHandler := httphandler.NewHandler(searchQuery, filtersQuery, cfg.Catalog.PageSize, log)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		RedisClient:    redisClient,
		CatalogHandler: catalogHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
}
