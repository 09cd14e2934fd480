package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/plateforme-chat/chats-service/internal/config"
)

// Fanout delivers messages published on the messages topic to this
// instance's members of the channel group. Every instance runs one, so a
// message accepted anywhere reaches every live connection that should see
// it.
type Fanout struct {
	hub *Hub
}

func NewFanout(hub *Hub) *Fanout {
	return &Fanout{
		hub: hub,
	}
}

func (f *Fanout) Run(ctx context.Context, messages <-chan *redis.Message) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case message, ok := <-messages:
			if !ok {
				return nil
			}
			if err := f.deliver([]byte(message.Payload)); err != nil {
				logger.Error(fmt.Sprintf("failed to deliver message: %v", err))
			}
		}
	}
}

func (f *Fanout) deliver(payload []byte) error {
	var delivered DeliveredMessage
	if err := json.Unmarshal(payload, &delivered); err != nil {
		return fmt.Errorf("failed to decode delivered message: %v", err)
	}
	if delivered.Channel == "" {
		return fmt.Errorf("delivered message is missing its channel")
	}

	frame, err := newFrame(EventMessageDelivered, delivered)
	if err != nil {
		return err
	}

	f.hub.Broadcast(delivered.Channel, frame)
	return nil
}
