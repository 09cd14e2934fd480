package model

import (
	"encoding/json"
	"fmt"
)

// Wire tags of the channel events published by the canaux service.
const (
	EventTypeChannelCreated = "nouveau"
	EventTypeChannelDeleted = "supprime"
	EventTypeAccessGranted  = "acces-rejoint"
	EventTypeAccessRevoked  = "acces-supprime"
)

// ChannelEvent is one decoded event from the channel topic. The set of
// variants is closed: ChannelCreated, ChannelDeleted, AccessGranted,
// AccessRevoked and UnknownEvent for tags this consumer does not know.
type ChannelEvent interface {
	isChannelEvent()
}

type ChannelCreated struct {
	Channel string `json:"canal"`
	Owner   string `json:"proprietaire"`
}

type ChannelDeleted struct {
	Channel string `json:"canal"`
}

type AccessGranted struct {
	Channel  string `json:"canal"`
	Identity string `json:"utilisateur"`
}

type AccessRevoked struct {
	Channel  string `json:"canal"`
	Identity string `json:"utilisateur"`
}

// UnknownEvent carries a tag published by a newer canaux version.
// Consumers ignore it instead of failing.
type UnknownEvent struct {
	Type string
}

func (ChannelCreated) isChannelEvent() {}
func (ChannelDeleted) isChannelEvent() {}
func (AccessGranted) isChannelEvent()  {}
func (AccessRevoked) isChannelEvent()  {}
func (UnknownEvent) isChannelEvent()   {}

type eventEnvelope struct {
	Type string `json:"type"`
}

// ParseChannelEvent decodes one published payload into its typed variant.
func ParseChannelEvent(payload []byte) (ChannelEvent, error) {
	var envelope eventEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode event envelope: %v", err)
	}

	switch envelope.Type {
	case EventTypeChannelCreated:
		var event ChannelCreated
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to decode %s event: %v", envelope.Type, err)
		}
		if event.Channel == "" || event.Owner == "" {
			return nil, fmt.Errorf("%s event is missing required fields", envelope.Type)
		}
		return event, nil
	case EventTypeChannelDeleted:
		var event ChannelDeleted
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to decode %s event: %v", envelope.Type, err)
		}
		if event.Channel == "" {
			return nil, fmt.Errorf("%s event is missing required fields", envelope.Type)
		}
		return event, nil
	case EventTypeAccessGranted:
		var event AccessGranted
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to decode %s event: %v", envelope.Type, err)
		}
		if event.Channel == "" || event.Identity == "" {
			return nil, fmt.Errorf("%s event is missing required fields", envelope.Type)
		}
		return event, nil
	case EventTypeAccessRevoked:
		var event AccessRevoked
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to decode %s event: %v", envelope.Type, err)
		}
		if event.Channel == "" || event.Identity == "" {
			return nil, fmt.Errorf("%s event is missing required fields", envelope.Type)
		}
		return event, nil
	default:
		return UnknownEvent{Type: envelope.Type}, nil
	}
}
