package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	cache "github.com/plateforme-chat/chats-service/internal/cache/redis"
	"github.com/plateforme-chat/chats-service/internal/client/auth"
	"github.com/plateforme-chat/chats-service/internal/client/canaux"
	"github.com/plateforme-chat/chats-service/internal/config"
	"github.com/plateforme-chat/chats-service/internal/databus/channel"
	"github.com/plateforme-chat/chats-service/internal/infra"
	"github.com/plateforme-chat/chats-service/internal/pkg/jwt"
	"github.com/plateforme-chat/chats-service/internal/pkg/validator"
	db "github.com/plateforme-chat/chats-service/internal/repository/postgres"
	"github.com/plateforme-chat/chats-service/internal/ws"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	cacheClient := cache.New(cfg)
	defer cacheClient.Close()

	tokenGenerator := jwt.New(cfg.Internal.Secret)

	authClient, err := auth.New(cfg, tokenGenerator)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create auth client: %v", err))
		return
	}
	defer authClient.Close()

	canauxClient, err := canaux.New(cfg, tokenGenerator)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create canaux client: %v", err))
		return
	}
	defer canauxClient.Close()

	vldtr := validator.New()
	hub := ws.NewHub()

	wsHandler := ws.New(cfg, cacheClient, hub, dbRepo, authClient, canauxClient, vldtr)
	eventConsumer := channel.NewConsumer(channel.New(cacheClient, hub, dbRepo))
	fanout := ws.NewFanout(hub)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Get("/ws", wsHandler.ServeWS)
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx := context.WithValue(context.Background(), config.KeyLogger, logger)

	eventSub := cacheClient.Subscribe(ctx, cache.TopicChannelEvents)
	defer eventSub.Close()

	messageSub := cacheClient.Subscribe(ctx, cache.TopicMessages)
	defer messageSub.Close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return eventConsumer.Run(gctx, eventSub.Channel())
	})

	g.Go(func() error {
		return fanout.Run(gctx, messageSub.Channel())
	})

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
