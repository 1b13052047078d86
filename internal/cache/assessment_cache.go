package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AssessmentCache mirrors the hot per-user assessment state in Redis:
// the set of answered item ids and the question count. The Mongo swipe
// log remains the source of truth; this cache only spares the selector a
// full log read per question and is rebuilt from the log if it expires.
type AssessmentCache interface {
	AddAnswered(ctx context.Context, userID, itemID string) error
	GetAnswered(ctx context.Context, userID string) (map[string]bool, error)
	CountAnswered(ctx context.Context, userID string) (int, error)
	Rebuild(ctx context.Context, userID string, itemIDs []string) error
	Clear(ctx context.Context, userID string) error
}

type assessmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssessmentCache creates a new assessment cache
func NewAssessmentCache(client *redis.Client) AssessmentCache {
	return &assessmentCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *assessmentCache) answeredKey(userID string) string {
	return fmt.Sprintf("user:%s:answered", userID)
}

func (c *assessmentCache) AddAnswered(ctx context.Context, userID, itemID string) error {
	key := c.answeredKey(userID)
	if err := c.client.SAdd(ctx, key, itemID).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *assessmentCache) GetAnswered(ctx context.Context, userID string) (map[string]bool, error) {
	members, err := c.client.SMembers(ctx, c.answeredKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	answered := make(map[string]bool, len(members))
	for _, m := range members {
		answered[m] = true
	}
	return answered, nil
}

func (c *assessmentCache) CountAnswered(ctx context.Context, userID string) (int, error) {
	n, err := c.client.SCard(ctx, c.answeredKey(userID)).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (c *assessmentCache) Rebuild(ctx context.Context, userID string, itemIDs []string) error {
	key := c.answeredKey(userID)
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(itemIDs) > 0 {
		members := make([]interface{}, len(itemIDs))
		for i, id := range itemIDs {
			members[i] = id
		}
		pipe.SAdd(ctx, key, members...)
		pipe.Expire(ctx, key, c.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *assessmentCache) Clear(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.answeredKey(userID)).Err()
}
