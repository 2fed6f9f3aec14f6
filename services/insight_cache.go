package services

import (
	"context"
	"encoding/json"
	"fmt"
	"main/model"
	"time"

	"github.com/redis/go-redis/v9"
)

const insightCacheKey = "insights:latest"

// InsightCache stores the most recently generated insight set in Redis so a
// restarted process can serve the latest results without another model call.
// The cache is advisory: every error degrades to "no cached value".
type InsightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightCache connects to Redis and verifies the connection.
func NewInsightCache(redisURL string, ttl time.Duration) (*InsightCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &InsightCache{client: client, ttl: ttl}, nil
}

// StoreLatest replaces the cached insight set.
func (ic *InsightCache) StoreLatest(ctx context.Context, insights []model.Insight) error {
	data, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("failed to marshal insights: %v", err)
	}
	if err := ic.client.Set(ctx, insightCacheKey, data, ic.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache insights: %v", err)
	}
	return nil
}

// Latest returns the cached insight set, or nil on a cache miss.
func (ic *InsightCache) Latest(ctx context.Context) ([]model.Insight, error) {
	data, err := ic.client.Get(ctx, insightCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get insights from cache: %v", err)
	}

	var insights []model.Insight
	if err := json.Unmarshal(data, &insights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal insights: %v", err)
	}
	return insights, nil
}
