package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/passgen/passgen-go/internal/model"
	"github.com/redis/go-redis/v9"
)

const statsHashKey = "passgen:stats"

// NewRedisClient parses a redis:// URL and verifies the server answers a ping.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

// RedisStatsRepository keeps counters as fields of a single hash,
// one field per "kind:label".
type RedisStatsRepository struct {
	client *redis.Client
	key    string
}

// NewRedisStatsRepository creates a new RedisStatsRepository.
func NewRedisStatsRepository(client *redis.Client) *RedisStatsRepository {
	return &RedisStatsRepository{client: client, key: statsHashKey}
}

func (r *RedisStatsRepository) Name() string { return "redis" }

// Increment adds one to the counter for kind and label.
func (r *RedisStatsRepository) Increment(ctx context.Context, kind, label string) error {
	if kind == "" || label == "" {
		return ErrInvalidStatsKey
	}
	return r.client.HIncrBy(ctx, r.key, kind+":"+label, 1).Err()
}

// Snapshot returns every counter ordered by kind, then label. Fields that do
// not parse are skipped.
func (r *RedisStatsRepository) Snapshot(ctx context.Context) ([]model.StatsCounter, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}

	counters := make([]model.StatsCounter, 0, len(fields))
	for field, value := range fields {
		kind, label, ok := strings.Cut(field, ":")
		if !ok {
			continue
		}
		total, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		counters = append(counters, model.StatsCounter{Kind: kind, Label: label, Total: total})
	}

	sortCounters(counters)
	return counters, nil
}
