package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"

	"github.com/go-redis/redis/v8"
)

const (
	liveWorkoutKey = "gymsession:live-workout"
	// a live workout nobody touched for this long is abandoned
	DefaultLiveTTL = 24 * time.Hour
)

// LiveCache mirrors the live workout to redis, so a restarted process can resume it.
type LiveCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewLiveCache(redisClient *redis.Client, ttl time.Duration) *LiveCache {
	if ttl <= 0 {
		ttl = DefaultLiveTTL
	}
	return &LiveCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (c *LiveCache) SaveLive(ctx context.Context, w workout.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.live.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	doc, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal live workout: %w", err)
	}

	if err := c.redisClient.Set(ctx, liveWorkoutKey, string(doc), c.ttl).Err(); err != nil {
		return fmt.Errorf("save live workout: %w", err)
	}
	return nil
}

// GetLive returns the mirrored live workout; ok is false when there is none.
func (c *LiveCache) GetLive(ctx context.Context) (_ workout.Workout, ok bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.live.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	doc, err := c.redisClient.Get(ctx, liveWorkoutKey).Result()
	if errors.Is(err, redis.Nil) {
		return workout.Workout{}, false, nil
	}
	if err != nil {
		return workout.Workout{}, false, fmt.Errorf("get live workout: %w", err)
	}

	var w workout.Workout
	if err := json.Unmarshal([]byte(doc), &w); err != nil {
		return workout.Workout{}, false, fmt.Errorf("unmarshal live workout: %w", err)
	}
	return w, true, nil
}

func (c *LiveCache) ClearLive(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.live.clear")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := c.redisClient.Del(ctx, liveWorkoutKey).Err(); err != nil {
		return fmt.Errorf("clear live workout: %w", err)
	}
	return nil
}
