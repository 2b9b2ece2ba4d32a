package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/whalewatch/internal/dedup"
)

const (
	// dedupKeyPrefix namespaces alert claims.
	dedupKeyPrefix = "dedup"

	// dedupDelivered is the value stored once an alert was sent.
	dedupDelivered = "done"
)

// dedupKey returns the claim key of an event id.
//
// Format: "dedup:alert:{id}"
func dedupKey(id string) string {
	return fmt.Sprintf("%s:alert:%s", dedupKeyPrefix, id)
}

// Claim reserves id with SET NX. A key holding "done" means the alert was
// already delivered; any other value is a claim held by another worker.
func (c *client) Claim(ctx context.Context, id string, ttl time.Duration) error {
	key := dedupKey(id)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == dedupDelivered {
		return dedup.ErrAlreadyDelivered
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return dedup.ErrInFlight
	}

	return nil
}

// MarkDelivered stores "done" under the claim key for ttl.
func (c *client) MarkDelivered(ctx context.Context, id string, ttl time.Duration) error {
	return c.conn.Set(ctx, dedupKey(id), dedupDelivered, ttl).Err()
}

// Release deletes the claim key.
func (c *client) Release(ctx context.Context, id string) error {
	return c.conn.Del(ctx, dedupKey(id)).Err()
}

var _ dedup.Guard = new(client)
