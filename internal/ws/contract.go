//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package ws

import (
	"context"
	"time"

	"github.com/plateforme-chat/chats-service/internal/model"
)

type MembershipCache interface {
	AddEdge(ctx context.Context, identity, channel string) error
	IsMember(ctx context.Context, identity, channel string) (bool, error)
	ChannelsOf(ctx context.Context, identity string) ([]string, error)
	AddConnection(ctx context.Context, identity, connectionID string) (int64, error)
	RemoveConnection(ctx context.Context, identity, connectionID string) (int64, error)
	DropIdentity(ctx context.Context, identity string) error
	Publish(ctx context.Context, topic string, payload interface{}) error
}

type DBRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	GetChannelMessages(ctx context.Context, channelID string, before int64, limit uint64) (model.MessageList, error)
}

type AuthClient interface {
	ValidateSession(ctx context.Context, sessionID string) (*model.Identity, error)
}

type CanauxClient interface {
	MemberChannels(ctx context.Context, handle string) ([]string, error)
}

type Validator interface {
	ValidateChannelID(channelID string) error
	ValidateContent(content string) error
	ValidateTimestamp(timestamp string) (time.Time, error)
	ValidateCursor(cursor *string) (int64, error)
}
