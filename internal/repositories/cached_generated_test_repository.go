package repositories

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/cache"
	"github.com/SAP-F-2025/workdna-service/internal/models"
)

const generatedTestCachePrefix = "generated_test:"

// cachedGeneratedTestRepository puts a read-through cache in front of another
// GeneratedTestRepository. Generated tests never change once created, so
// entries only expire by TTL.
type cachedGeneratedTestRepository struct {
	next   GeneratedTestRepository
	cache  cache.CacheService
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedGeneratedTestRepository(next GeneratedTestRepository, cacheService cache.CacheService, ttl time.Duration, logger *slog.Logger) GeneratedTestRepository {
	return &cachedGeneratedTestRepository{
		next:   next,
		cache:  cacheService,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *cachedGeneratedTestRepository) Create(ctx context.Context, test *models.GeneratedTest) error {
	if err := r.next.Create(ctx, test); err != nil {
		return err
	}
	if err := r.cache.Set(ctx, generatedTestCachePrefix+test.TestKey, test, r.ttl); err != nil {
		r.logger.Warn("Failed to cache generated test", "test_key", test.TestKey, "error", err)
	}
	return nil
}

func (r *cachedGeneratedTestRepository) GetByKey(ctx context.Context, testKey string) (*models.GeneratedTest, error) {
	var cached models.GeneratedTest
	err := r.cache.Get(ctx, generatedTestCachePrefix+testKey, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn("Generated test cache read failed", "test_key", testKey, "error", err)
	}

	test, err := r.next.GetByKey(ctx, testKey)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, generatedTestCachePrefix+testKey, test, r.ttl); err != nil {
		r.logger.Warn("Failed to cache generated test", "test_key", testKey, "error", err)
	}
	return test, nil
}

func (r *cachedGeneratedTestRepository) List(ctx context.Context) ([]*models.GeneratedTest, error) {
	return r.next.List(ctx)
}

type cachedRepository struct {
	Repository
	generatedTests GeneratedTestRepository
}

// NewCachedRepository wraps repo so generated test lookups go through cacheService
func NewCachedRepository(repo Repository, cacheService cache.CacheService, ttl time.Duration, logger *slog.Logger) Repository {
	return &cachedRepository{
		Repository:     repo,
		generatedTests: NewCachedGeneratedTestRepository(repo.GeneratedTest(), cacheService, ttl, logger),
	}
}

func (r *cachedRepository) GeneratedTest() GeneratedTestRepository {
	return r.generatedTests
}
