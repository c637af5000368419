package sequence

import (
	"context"
	"fmt"

	domainseq "github.com/ims/backend/internal/domain/shared/sequence"
	"github.com/redis/go-redis/v9"
)

// RedisGenerator issues sequential numbers from an atomic redis
// counter per document class. INCR makes concurrent creation safe:
// every caller observes a distinct count.
type RedisGenerator struct {
	client *redis.Client
	prefix string
}

// NewRedisGenerator creates a redis-backed generator
func NewRedisGenerator(client *redis.Client) *RedisGenerator {
	return &RedisGenerator{client: client, prefix: "ims:seq:"}
}

// Next implements sequence.Generator
func (g *RedisGenerator) Next(ctx context.Context, class domainseq.Class) (string, error) {
	n, err := g.client.Incr(ctx, g.prefix+class.Name).Result()
	if err != nil {
		return "", fmt.Errorf("increment %s counter: %w", class.Name, err)
	}
	return class.Format(n), nil
}

// Seed moves the counter forward to at least n, used when switching
// from another generator so new numbers continue past issued ones.
// A counter already beyond n is left alone.
func (g *RedisGenerator) Seed(ctx context.Context, class domainseq.Class, n int64) error {
	key := g.prefix + class.Name
	current, err := g.client.Get(ctx, key).Int64()
	if err != nil && err != redis.Nil {
		return err
	}
	if current >= n {
		return nil
	}
	return g.client.Set(ctx, key, n, 0).Err()
}
