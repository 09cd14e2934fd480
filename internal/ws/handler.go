package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	cache "github.com/plateforme-chat/chats-service/internal/cache/redis"
	"github.com/plateforme-chat/chats-service/internal/client/auth"
	"github.com/plateforme-chat/chats-service/internal/config"
	"github.com/plateforme-chat/chats-service/internal/model"
)

const sessionCookieName = "sid"

type Handler struct {
	cache        MembershipCache
	hub          *Hub
	repository   DBRepo
	authClient   AuthClient
	canauxClient CanauxClient
	validator    Validator
	upgrader     websocket.Upgrader
}

func New(
	cfg *config.Config,
	membershipCache MembershipCache,
	hub *Hub,
	repo DBRepo,
	authClient AuthClient,
	canauxClient CanauxClient,
	validator Validator,
) *Handler {
	return &Handler{
		cache:        membershipCache,
		hub:          hub,
		repository:   repo,
		authClient:   authClient,
		canauxClient: canauxClient,
		validator:    validator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == cfg.Web.Domain
			},
		},
	}
}

// ServeWS admits one realtime connection. The session cookie is validated
// against the auth service before the upgrade; an unproven identity never
// touches the cache.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ServeWS")

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		logger.Error("no session cookie provided")
		http.Error(w, "no session cookie provided", http.StatusUnauthorized)
		return
	}

	identity, err := h.authClient.ValidateSession(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			logger.Error("session rejected by auth service")
		} else {
			logger.Error(fmt.Sprintf("failed to validate session: %v", err))
		}
		http.Error(w, "authentication failed", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}

	client := newClient(*identity, conn)
	go client.writePump()

	if err := h.register(r.Context(), client); err != nil {
		logger.Error(fmt.Sprintf("failed to register connection: %v", err))
		client.sendError("failed to join channels")
		h.unregister(r.Context(), client)
		client.close()
		return
	}

	h.readPump(r.Context(), client)
}

// register adds the connection to the identity's Connection Set and joins
// it to its channel groups. The first connection of an identity hydrates
// the membership cache from the canaux service; later ones reuse the warm
// cache. Two first connections racing both hydrate, which only costs a
// redundant collaborator call.
func (h *Handler) register(ctx context.Context, client *Client) error {
	count, err := h.cache.AddConnection(ctx, client.identity.ID, client.id)
	if err != nil {
		return fmt.Errorf("failed to add connection: %v", err)
	}

	h.hub.Register(client)

	if count == 1 {
		channels, err := h.canauxClient.MemberChannels(ctx, client.identity.Handle)
		if err != nil {
			return fmt.Errorf("failed to fetch member channels: %v", err)
		}

		for _, channel := range channels {
			if err := h.cache.AddEdge(ctx, client.identity.ID, channel); err != nil {
				return fmt.Errorf("failed to cache membership: %v", err)
			}
			h.hub.Join(channel, client)
		}
		return nil
	}

	channels, err := h.cache.ChannelsOf(ctx, client.identity.ID)
	if err != nil {
		return fmt.Errorf("failed to get cached channels: %v", err)
	}

	for _, channel := range channels {
		h.hub.Join(channel, client)
	}
	return nil
}

// unregister removes the connection from its groups and from the identity's
// Connection Set. Closing the last connection drops the identity's
// live-connection footprint; membership edges survive, since disconnecting
// is not revocation.
func (h *Handler) unregister(ctx context.Context, client *Client) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	h.hub.Unregister(client)

	remaining, err := h.cache.RemoveConnection(ctx, client.identity.ID, client.id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to remove connection: %v", err))
		return
	}

	if remaining == 0 {
		if err := h.cache.DropIdentity(ctx, client.identity.ID); err != nil {
			logger.Error(fmt.Sprintf("failed to drop identity: %v", err))
		}
	}
}

func (h *Handler) readPump(ctx context.Context, client *Client) {
	defer func() {
		h.unregister(ctx, client)
		client.close()
	}()

	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			return
		}
		h.dispatch(ctx, client, raw)
	}
}

func (h *Handler) dispatch(ctx context.Context, client *Client, raw []byte) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		client.sendError("invalid frame")
		return
	}

	switch frame.Event {
	case EventSendMessage:
		h.handleSendMessage(ctx, client, frame.Data)
	case EventFetchHistory:
		h.handleFetchHistory(ctx, client, frame.Data)
	default:
		client.sendError("unknown event")
	}
}

// handleSendMessage validates, persists and fans out one chat message. The
// membership check reads only the cache, so a stale entry inside the
// propagation lag window is possible and accepted.
func (h *Handler) handleSendMessage(ctx context.Context, client *Client, data json.RawMessage) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("handleSendMessage")

	var req SendMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		client.sendError("invalid request")
		return
	}

	if err := h.validator.ValidateChannelID(req.Channel); err != nil {
		client.sendError(err.Error())
		return
	}

	isMember, err := h.cache.IsMember(ctx, client.identity.ID, req.Channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check channel membership: %v", err))
		client.sendError("failed to check channel membership")
		return
	}
	if !isMember {
		client.sendError("channel not allowed")
		return
	}

	if err := h.validator.ValidateContent(req.Body); err != nil {
		client.sendError(err.Error())
		return
	}

	sentAt, err := h.validator.ValidateTimestamp(req.ClientTimestamp)
	if err != nil {
		client.sendError(err.Error())
		return
	}

	message := model.Message{
		ChannelID:    req.Channel,
		AuthorID:     client.identity.ID,
		AuthorHandle: client.identity.Handle,
		Content:      req.Body,
		SentAt:       sentAt,
	}

	if err := h.repository.SaveMessage(ctx, &message); err != nil {
		logger.Error(fmt.Sprintf("failed to save message: %v", err))
		client.sendError("failed to save message")
		return
	}

	delivered := DeliveredMessage{
		ID:              strconv.FormatInt(message.ID, 10),
		Channel:         message.ChannelID,
		Body:            message.Content,
		Author:          message.AuthorHandle,
		ClientTimestamp: req.ClientTimestamp,
	}

	// Every instance's fan-out subscriber, this one included, delivers the
	// message to its local group members. The sender gets its copy the same
	// way, there is no local echo.
	if err := h.cache.Publish(ctx, cache.TopicMessages, delivered); err != nil {
		logger.Error(fmt.Sprintf("failed to publish message: %v", err))
	}
}

// handleFetchHistory serves one page of at most 50 persisted messages,
// oldest first. The cursor is the id of the oldest message the client
// already has; a page shorter than 50 tells the client no older page
// exists.
func (h *Handler) handleFetchHistory(ctx context.Context, client *Client, data json.RawMessage) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("handleFetchHistory")

	var req FetchHistoryRequest
	if err := json.Unmarshal(data, &req); err != nil {
		client.sendError("invalid request")
		return
	}

	if err := h.validator.ValidateChannelID(req.Channel); err != nil {
		client.sendError(err.Error())
		return
	}

	isMember, err := h.cache.IsMember(ctx, client.identity.ID, req.Channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check channel membership: %v", err))
		client.sendError("failed to check channel membership")
		return
	}
	if !isMember {
		client.sendError("channel not allowed")
		return
	}

	before, err := h.validator.ValidateCursor(req.Cursor)
	if err != nil {
		client.sendError(err.Error())
		return
	}

	messages, err := h.repository.GetChannelMessages(ctx, req.Channel, before, 0)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		client.sendError("failed to fetch messages")
		return
	}

	page := HistoryPage{
		Channel:  req.Channel,
		Messages: make([]DeliveredMessage, 0, len(messages)),
	}
	for _, message := range messages {
		page.Messages = append(page.Messages, DeliveredMessage{
			ID:              strconv.FormatInt(message.ID, 10),
			Channel:         message.ChannelID,
			Body:            message.Content,
			Author:          message.AuthorHandle,
			ClientTimestamp: message.SentAt.UTC().Format(model.TimeLayoutISOMillis),
		})
	}

	frame, err := newFrame(EventHistoryPage, page)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to build history frame: %v", err))
		client.sendError("failed to fetch messages")
		return
	}
	client.enqueue(frame)
}
