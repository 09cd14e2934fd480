package channel

import (
	"context"
	"fmt"

	"github.com/plateforme-chat/chats-service/internal/model"
)

// Handler applies one channel event to the membership cache and to this
// instance's connection groups. Every operation is an idempotent set
// mutation, so duplicate delivery and replays are harmless.
type Handler struct {
	cache      MembershipCache
	groups     ConnectionGroups
	repository DBRepo
}

func New(cache MembershipCache, groups ConnectionGroups, repository DBRepo) *Handler {
	return &Handler{
		cache:      cache,
		groups:     groups,
		repository: repository,
	}
}

func (h *Handler) Handle(ctx context.Context, payload []byte) error {
	event, err := model.ParseChannelEvent(payload)
	if err != nil {
		return err
	}

	switch event := event.(type) {
	case model.ChannelCreated:
		if err := h.cache.AddEdge(ctx, event.Owner, event.Channel); err != nil {
			return fmt.Errorf("failed to add owner edge: %v", err)
		}
		h.groups.JoinIdentity(event.Channel, event.Owner)
	case model.ChannelDeleted:
		if err := h.cache.DropChannel(ctx, event.Channel); err != nil {
			return fmt.Errorf("failed to drop channel: %v", err)
		}
		h.groups.DropChannel(event.Channel)
		if err := h.repository.DeleteChannelMessages(ctx, event.Channel); err != nil {
			return fmt.Errorf("failed to purge channel messages: %v", err)
		}
	case model.AccessGranted:
		if err := h.cache.AddEdge(ctx, event.Identity, event.Channel); err != nil {
			return fmt.Errorf("failed to add member edge: %v", err)
		}
		h.groups.JoinIdentity(event.Channel, event.Identity)
	case model.AccessRevoked:
		if err := h.cache.RemoveEdge(ctx, event.Identity, event.Channel); err != nil {
			return fmt.Errorf("failed to remove member edge: %v", err)
		}
		h.groups.LeaveIdentity(event.Channel, event.Identity)
	case model.UnknownEvent:
		// Published by a newer canaux version, nothing to apply.
	}

	return nil
}
