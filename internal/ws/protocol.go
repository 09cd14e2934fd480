package ws

import (
	"encoding/json"
	"fmt"
)

// Wire event names of the client protocol.
const (
	EventSendMessage      = "send-message"
	EventFetchHistory     = "fetch-history"
	EventMessageDelivered = "message-delivered"
	EventHistoryPage      = "history-page"
	EventInternalError    = "internal-error"
)

// Frame is the envelope of every client-facing message, in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type SendMessageRequest struct {
	Channel         string `json:"channel"`
	Body            string `json:"body"`
	ClientTimestamp string `json:"clientTimestamp"`
}

type FetchHistoryRequest struct {
	Channel string  `json:"channel"`
	Cursor  *string `json:"cursor"`
}

// DeliveredMessage is the client-facing form of a persisted message. The id
// doubles as the pagination cursor.
type DeliveredMessage struct {
	ID              string `json:"id"`
	Channel         string `json:"channel"`
	Body            string `json:"body"`
	Author          string `json:"author"`
	ClientTimestamp string `json:"clientTimestamp"`
}

type HistoryPage struct {
	Channel  string             `json:"channel"`
	Messages []DeliveredMessage `json:"messages"`
}

type InternalError struct {
	Reason string `json:"reason"`
}

func newFrame(event string, data interface{}) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame data: %v", err)
	}

	frame, err := json.Marshal(Frame{Event: event, Data: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame: %v", err)
	}

	return frame, nil
}
