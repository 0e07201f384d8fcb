package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
)

// RateLimitRepository counts requests per client in fixed Redis windows
type RateLimitRepository struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimitRepository allows limit requests per client per window.
func NewRateLimitRepository(client *redis.Client, limit int, window time.Duration) *RateLimitRepository {
	return &RateLimitRepository{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

// Allow increments the counter for clientID and reports whether it is still within the limit.
func (r *RateLimitRepository) Allow(ctx context.Context, scope, clientID string) (bool, error) {
	key := fmt.Sprintf("rate_limit:%s:%s", scope, clientID)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, r.window)
	_, err := pipe.Exec(ctx)

	logger.Log.Infow("rate limit check",
		"key", key,
		"result", incr.Val(),
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return incr.Val() <= r.limit, nil
}
