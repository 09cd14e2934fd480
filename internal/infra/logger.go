package infra

import (
	"context"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/plateforme-chat/chats-service/internal/config"
)

// LoggerHTTP puts the service logger into the request context so handlers
// can pull it with logger_lib.FromContext.
func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
