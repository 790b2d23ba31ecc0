package ws

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// ListenReliefEvents bridges the Redis channel into the hub. Runs until
// the context is cancelled.
func ListenReliefEvents(ctx context.Context, rdb *redis.Client, hub *Hub) {
	sub := rdb.Subscribe(ctx, reliefEventsChannel)
	defer sub.Close()
	ch := sub.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event Message
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Println("Error parsing relief event:", err)
				continue
			}
			hub.broadcast <- event
		}
	}
}
