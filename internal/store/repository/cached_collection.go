package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"storesvc/internal/store/cache"
	"storesvc/internal/store/model"
)

// CachedCollectionRepository decorates config lookups with a Redis cache and
// drops cached entries whenever the config is written. Cache failures are
// logged and fall through to Mongo; they never fail the request.
type CachedCollectionRepository struct {
	inner  CollectionRepository
	redis  *cache.RedisClient
	logger *slog.Logger
}

func NewCachedCollectionRepository(inner CollectionRepository, redis *cache.RedisClient, logger *slog.Logger) *CachedCollectionRepository {
	return &CachedCollectionRepository{inner: inner, redis: redis, logger: logger}
}

func configCacheKey(token string) string {
	return "collection:config:" + token
}

func (r *CachedCollectionRepository) GetCollectionConfig(ctx context.Context, token string) (*model.CollectionConfig, error) {
	key := configCacheKey(token)

	cached, found, err := r.redis.Get(ctx, key)
	if err != nil {
		r.logger.Warn("config cache read failed", "token", token, "error", err)
	} else if found {
		var cfg model.CollectionConfig
		if err := json.Unmarshal([]byte(cached), &cfg); err == nil {
			return &cfg, nil
		}
		r.logger.Warn("config cache entry corrupt, evicting", "token", token)
		_ = r.redis.Delete(ctx, key)
	}

	cfg, err := r.inner.GetCollectionConfig(ctx, token)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(cfg); err == nil {
		if err := r.redis.Set(ctx, key, string(encoded)); err != nil {
			r.logger.Warn("config cache write failed", "token", token, "error", err)
		}
	}
	return cfg, nil
}

func (r *CachedCollectionRepository) CreateCollection(ctx context.Context, cfg *model.CollectionConfig, schema *model.CollectionSchema) error {
	if err := r.inner.CreateCollection(ctx, cfg, schema); err != nil {
		return err
	}
	r.invalidate(ctx, cfg.Token)
	return nil
}

func (r *CachedCollectionRepository) UpdateCollectionConfig(ctx context.Context, token string, update map[string]any) (bool, error) {
	ok, err := r.inner.UpdateCollectionConfig(ctx, token, update)
	if err == nil {
		r.invalidate(ctx, token)
	}
	return ok, err
}

func (r *CachedCollectionRepository) GetCollectionSchema(ctx context.Context, collectionID string) (*model.CollectionSchema, error) {
	return r.inner.GetCollectionSchema(ctx, collectionID)
}

func (r *CachedCollectionRepository) UpdateCollectionSchema(ctx context.Context, collectionID string, update map[string]any) (bool, error) {
	return r.inner.UpdateCollectionSchema(ctx, collectionID, update)
}

func (r *CachedCollectionRepository) CreateCollectionSchema(ctx context.Context, schema *model.CollectionSchema) error {
	return r.inner.CreateCollectionSchema(ctx, schema)
}

func (r *CachedCollectionRepository) EnsureIndexes(ctx context.Context) error {
	return r.inner.EnsureIndexes(ctx)
}

func (r *CachedCollectionRepository) invalidate(ctx context.Context, token string) {
	if err := r.redis.Delete(ctx, configCacheKey(token)); err != nil {
		r.logger.Warn("config cache invalidation failed", "token", token, "error", err)
	}
}
