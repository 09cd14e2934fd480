package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/plateforme-chat/chats-service/internal/config"
)

// Pub/sub topics shared with the canaux service and the other instances
// of this service.
const (
	TopicChannelEvents = "canal"
	TopicMessages      = "messages"
)

// Key prefixes. The same keys are read and written by every instance, so
// every mutation below is a single atomic Redis command per direction.
const (
	sessionPrefix = "session:"     // identity -> set of live connection ids
	userPrefix    = "utilisateur:" // identity -> set of channel ids
	channelPrefix = "canal:"       // channel  -> set of identity ids
)

type Client struct {
	connection *redis.Client
}

func New(cfg *config.Config) *Client {
	conn := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := conn.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Client{
		connection: conn,
	}
}

func (c *Client) Close() {
	_ = c.connection.Close()
}

// AddEdge records that the identity is a member of the channel. Repeating
// the call has no effect.
func (c *Client) AddEdge(ctx context.Context, identity, channel string) error {
	if err := c.connection.SAdd(ctx, channelPrefix+channel, identity).Err(); err != nil {
		return fmt.Errorf("failed to add identity to channel set: %v", err)
	}
	if err := c.connection.SAdd(ctx, userPrefix+identity, channel).Err(); err != nil {
		return fmt.Errorf("failed to add channel to identity set: %v", err)
	}
	return nil
}

// RemoveEdge removes the membership in both directions. Repeating the call
// has no effect.
func (c *Client) RemoveEdge(ctx context.Context, identity, channel string) error {
	if err := c.connection.SRem(ctx, channelPrefix+channel, identity).Err(); err != nil {
		return fmt.Errorf("failed to remove identity from channel set: %v", err)
	}
	if err := c.connection.SRem(ctx, userPrefix+identity, channel).Err(); err != nil {
		return fmt.Errorf("failed to remove channel from identity set: %v", err)
	}
	return nil
}

// IsMember is the sole authorization check on the message path; it never
// touches the canaux service.
func (c *Client) IsMember(ctx context.Context, identity, channel string) (bool, error) {
	isMember, err := c.connection.SIsMember(ctx, channelPrefix+channel, identity).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check channel membership: %v", err)
	}
	return isMember, nil
}

func (c *Client) ChannelsOf(ctx context.Context, identity string) ([]string, error) {
	channels, err := c.connection.SMembers(ctx, userPrefix+identity).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity channels: %v", err)
	}
	return channels, nil
}

func (c *Client) MembersOf(ctx context.Context, channel string) ([]string, error) {
	members, err := c.connection.SMembers(ctx, channelPrefix+channel).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get channel members: %v", err)
	}
	return members, nil
}

// DropChannel removes the channel set and the channel's entry in every
// member's set.
func (c *Client) DropChannel(ctx context.Context, channel string) error {
	members, err := c.MembersOf(ctx, channel)
	if err != nil {
		return err
	}

	for _, member := range members {
		if err := c.connection.SRem(ctx, userPrefix+member, channel).Err(); err != nil {
			return fmt.Errorf("failed to remove channel from identity set: %v", err)
		}
	}

	if err := c.connection.Del(ctx, channelPrefix+channel).Err(); err != nil {
		return fmt.Errorf("failed to delete channel set: %v", err)
	}
	return nil
}

// DropIdentity releases the identity's live-connection footprint once its
// last connection is gone. Membership edges stay untouched: disconnecting
// is not revocation, only the acces-supprime event removes an edge.
func (c *Client) DropIdentity(ctx context.Context, identity string) error {
	if err := c.connection.Del(ctx, sessionPrefix+identity).Err(); err != nil {
		return fmt.Errorf("failed to delete session set: %v", err)
	}
	return nil
}

// AddConnection registers a live connection and returns the resulting
// number of open connections for the identity. A result of 1 means this
// connection is the first one and must hydrate the cache.
func (c *Client) AddConnection(ctx context.Context, identity, connectionID string) (int64, error) {
	if err := c.connection.SAdd(ctx, sessionPrefix+identity, connectionID).Err(); err != nil {
		return 0, fmt.Errorf("failed to add connection to session set: %v", err)
	}

	count, err := c.connection.SCard(ctx, sessionPrefix+identity).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count session connections: %v", err)
	}
	return count, nil
}

// RemoveConnection deregisters a live connection and returns how many
// connections the identity still has open.
func (c *Client) RemoveConnection(ctx context.Context, identity, connectionID string) (int64, error) {
	if err := c.connection.SRem(ctx, sessionPrefix+identity, connectionID).Err(); err != nil {
		return 0, fmt.Errorf("failed to remove connection from session set: %v", err)
	}

	remaining, err := c.connection.SCard(ctx, sessionPrefix+identity).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count session connections: %v", err)
	}
	return remaining, nil
}

// Publish marshals the payload and publishes it on the topic.
func (c *Client) Publish(ctx context.Context, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	if err := c.connection.Publish(ctx, topic, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %v", topic, err)
	}
	return nil
}

// Subscribe opens a pub/sub subscription on the topic. The caller owns the
// returned subscription and must close it.
func (c *Client) Subscribe(ctx context.Context, topic string) *redis.PubSub {
	return c.connection.Subscribe(ctx, topic)
}
