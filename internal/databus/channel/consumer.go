package channel

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/plateforme-chat/chats-service/internal/config"
)

// Consumer reads the channel topic one event at a time. A malformed event
// or a failing handler is logged and dropped; the loop never stops on bad
// input.
type Consumer struct {
	handler *Handler
}

func NewConsumer(handler *Handler) *Consumer {
	return &Consumer{
		handler: handler,
	}
}

func (c *Consumer) Run(ctx context.Context, events <-chan *redis.Message) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := c.handler.Handle(ctx, []byte(event.Payload)); err != nil {
				logger.Error(fmt.Sprintf("failed to handle channel event: %v", err))
			}
		}
	}
}
