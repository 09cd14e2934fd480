package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/plateforme-chat/chats-service/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

// Client is one live connection of one identity. An identity may own any
// number of clients at once, one per device.
type Client struct {
	id       string
	identity model.Identity
	conn     *websocket.Conn
	send     chan []byte

	closeOnce sync.Once
}

func newClient(identity model.Identity, conn *websocket.Conn) *Client {
	return &Client{
		id:       uuid.New().String(),
		identity: identity,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
	}
}

// enqueue hands a frame to the write pump. Frames to a slow connection are
// dropped rather than blocking the caller.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *Client) sendError(reason string) {
	frame, err := newFrame(EventInternalError, InternalError{Reason: reason})
	if err != nil {
		return
	}
	c.enqueue(frame)
}

// close stops the write pump after it drained the pending frames.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
