//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package channel

import (
	"context"
)

type MembershipCache interface {
	AddEdge(ctx context.Context, identity, channel string) error
	RemoveEdge(ctx context.Context, identity, channel string) error
	DropChannel(ctx context.Context, channel string) error
}

// ConnectionGroups is the hub side of an event: the protocol-level group of
// every affected live connection is adjusted together with the cache.
type ConnectionGroups interface {
	JoinIdentity(channel, identity string)
	LeaveIdentity(channel, identity string)
	DropChannel(channel string)
}

type DBRepo interface {
	DeleteChannelMessages(ctx context.Context, channelID string) error
}
