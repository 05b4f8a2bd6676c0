package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/catalog"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vehicle-rental:catalog:"

// CachedFetcher shares catalog fetch results across sessions and instances.
// Redis failures degrade to a direct fetch.
type CachedFetcher struct {
	next   catalog.Fetcher
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedFetcher(next catalog.Fetcher, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *CachedFetcher {
	return &CachedFetcher{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedFetcher) FetchVehicles(ctx context.Context, hints vehicle.Hints) ([]*vehicle.Vehicle, error) {
	key := Key(hints)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		vs, decodeErr := decode(raw)
		if decodeErr == nil {
			return vs, nil
		}
		c.logger.Warn("Dropping undecodable catalog cache entry",
			slog.String("key", key), slog.String("error", decodeErr.Error()))
	case !errs.Is(err, redis.Nil):
		c.logger.Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	vs, err := c.next.FetchVehicles(ctx, hints)
	if err != nil {
		return nil, err
	}

	if data, err := encode(vs); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return vs, nil
}

// Invalidate drops every cached hint set.
func (c *CachedFetcher) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errs.Wrap(err, "scan catalog cache")
	}
	if len(keys) == 0 {
		return nil
	}
	return errs.Wrap(c.client.Del(ctx, keys...).Err(), "delete catalog cache")
}

func Key(hints vehicle.Hints) string {
	return keyPrefix + hints.Key()
}

func encode(vs []*vehicle.Vehicle) ([]byte, error) {
	attrs := make([]vehicle.Attributes, len(vs))
	for i, v := range vs {
		attrs[i] = v.Attributes()
	}
	return json.Marshal(attrs)
}

func decode(raw []byte) ([]*vehicle.Vehicle, error) {
	var attrs []vehicle.Attributes
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, err
	}
	vs := make([]*vehicle.Vehicle, len(attrs))
	for i, a := range attrs {
		vs[i] = vehicle.New(a)
	}
	return vs, nil
}
