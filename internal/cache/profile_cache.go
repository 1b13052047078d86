package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"civicswipe/internal/model"
)

// ProfileCache keeps the current blueprint per user so ballot
// recommendations read it without a Mongo round trip
type ProfileCache interface {
	Set(ctx context.Context, profile *model.BlueprintProfile) error
	Get(ctx context.Context, userID string) (*model.BlueprintProfile, error)
	Invalidate(ctx context.Context, userID string) error
}

type profileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache creates a new profile cache
func NewProfileCache(client *redis.Client) ProfileCache {
	return &profileCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *profileCache) profileKey(userID string) string {
	return fmt.Sprintf("user:%s:profile", userID)
}

func (c *profileCache) Set(ctx context.Context, profile *model.BlueprintProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.profileKey(profile.UserID), data, c.ttl).Err()
}

func (c *profileCache) Get(ctx context.Context, userID string) (*model.BlueprintProfile, error) {
	data, err := c.client.Get(ctx, c.profileKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var profile model.BlueprintProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *profileCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.profileKey(userID)).Err()
}
