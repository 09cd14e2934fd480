package model

import (
	"time"
)

// TimeLayoutISOMillis is the canonical client timestamp form: UTC with
// millisecond precision, the shape browsers serialize dates to. A client
// timestamp is accepted only if it re-serializes to itself in this layout.
const TimeLayoutISOMillis = "2006-01-02T15:04:05.000Z"

type MessageList []Message

type Message struct {
	ID           int64     `db:"id"`
	ChannelID    string    `db:"channel_id"`
	AuthorID     string    `db:"author_id"`
	AuthorHandle string    `db:"author_handle"`
	Content      string    `db:"content"`
	SentAt       time.Time `db:"sent_at"`
}
