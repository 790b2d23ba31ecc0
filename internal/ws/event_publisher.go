package ws

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

const reliefEventsChannel = "relief_events"

// ReliefEventPublisher pushes lifecycle events through Redis so every
// server instance can feed its own hub.
type ReliefEventPublisher struct {
	rdb *redis.Client
}

func NewReliefEventPublisher(rdb *redis.Client) *ReliefEventPublisher {
	return &ReliefEventPublisher{rdb: rdb}
}

// Publish sends a lifecycle event (newRequest, updateRequest,
// newNGORegistration) to Redis.
func (p *ReliefEventPublisher) Publish(ctx context.Context, eventType, audience string, data interface{}) error {
	event := Message{
		Type:     eventType,
		Audience: audience,
		Data:     data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.rdb.Publish(ctx, reliefEventsChannel, payload).Err(); err != nil {
		log.Printf("[WARN] failed to publish %s event: %v", eventType, err)
		return err
	}

	return nil
}
