package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/plateforme-chat/chats-service/internal/config"
)

type Handler struct {
	dbRepo DBRepo
}

func New(dbRepo DBRepo) *Handler {
	return &Handler{
		dbRepo: dbRepo,
	}
}

type HandleUpdate struct {
	UserID    string `json:"user_uuid"`
	NewHandle string `json:"new_handle"`
}

// Handler applies one account-service handle change to the denormalized
// author handle on persisted messages.
func (h *Handler) Handler(ctx context.Context, msg []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UpdateAuthorHandle")

	var update HandleUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		logger.Error(fmt.Sprintf("failed to decode handle update: %v", err))
		return
	}

	if update.UserID == "" || update.NewHandle == "" {
		logger.Error("handle update is missing required fields")
		return
	}

	if err := h.dbRepo.UpdateAuthorHandle(ctx, update.UserID, update.NewHandle); err != nil {
		logger.Error(fmt.Sprintf("failed to update author handle: %v", err))
	}
}
