// Package events fans question changes out to live listeners: handlers
// publish on a Redis channel and every API instance relays what it hears to
// its WebSocket clients.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

const defaultChannel = "trivia:questions"

// Publisher writes question events to a Redis Pub/Sub channel.
type Publisher struct {
	redis   *redis.Client
	channel string
	logger  zerolog.Logger
}

var _ question.EventPublisher = (*Publisher)(nil)

func NewPublisher(client *redis.Client, channel string, logger zerolog.Logger) *Publisher {
	if channel == "" {
		channel = defaultChannel
	}
	return &Publisher{
		redis:   client,
		channel: channel,
		logger:  logger.With().Str("component", "question_event_publisher").Logger(),
	}
}

// Publish sends evt as JSON. It reports how many subscribers received it at debug level.
func (p *Publisher) Publish(ctx context.Context, evt question.Event) error {
	if p == nil || p.redis == nil {
		return nil
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode question event: %w", err)
	}
	receivers, err := p.redis.Publish(ctx, p.channel, data).Result()
	if err != nil {
		return fmt.Errorf("publish question event: %w", err)
	}
	p.logger.Debug().Str("event", evt.Type).Int64("question_id", evt.QuestionID).Int64("receivers", receivers).Msg("question event published")
	return nil
}
