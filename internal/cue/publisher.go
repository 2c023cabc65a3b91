package cue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultChannel = "gymsession:cues"

type Event struct {
	Cue    ID        `json:"cue"`
	Action Action    `json:"action"`
	At     time.Time `json:"at"`
}

// Publisher pushes cue events to a redis pub/sub channel the client devices subscribe to.
type Publisher struct {
	redisClient *redis.Client
	channel     string
	now         workout.Clock
}

func NewPublisher(redisClient *redis.Client, channel string, now workout.Clock) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	if now == nil {
		now = time.Now
	}
	return &Publisher{
		redisClient: redisClient,
		channel:     channel,
		now:         now,
	}
}

func (p *Publisher) Play(ctx context.Context, id ID) error {
	return p.publish(ctx, id, ActionPlay)
}

func (p *Publisher) Stop(ctx context.Context, id ID) error {
	return p.publish(ctx, id, ActionStop)
}

func (p *Publisher) publish(ctx context.Context, id ID, action Action) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cue.publish")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("cue", id.String()),
		attribute.String("action", string(action)),
	)

	payload, err := json.Marshal(Event{Cue: id, Action: action, At: p.now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal cue event: %w", err)
	}

	if err := p.redisClient.Publish(ctx, p.channel, string(payload)).Err(); err != nil {
		return fmt.Errorf("publish cue [%s] %s: %w", id, action, err)
	}
	return nil
}
