package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"civicswipe/internal/model"
)

// SpecCache keeps the latest assessment spec hot in Redis so the
// question loop never hits Mongo per swipe
type SpecCache interface {
	Set(ctx context.Context, spec *model.Spec) error
	Get(ctx context.Context) (*model.Spec, error)
	Invalidate(ctx context.Context) error
}

type specCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSpecCache creates a new spec cache
func NewSpecCache(client *redis.Client) SpecCache {
	return &specCache{
		client: client,
		ttl:    time.Hour,
	}
}

const specKey = "spec:latest"

func (c *specCache) Set(ctx context.Context, spec *model.Spec) error {
	data, err := json.Marshal(spec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, specKey, data, c.ttl).Err()
}

func (c *specCache) Get(ctx context.Context) (*model.Spec, error) {
	data, err := c.client.Get(ctx, specKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var spec model.Spec
	if err := json.Unmarshal([]byte(data), &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (c *specCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, specKey).Err()
}
