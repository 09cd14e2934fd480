package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/plateforme-chat/chats-service/internal/config"
	"github.com/plateforme-chat/chats-service/internal/model"
)

// ErrUnauthenticated marks a session cookie the auth service refused, as
// opposed to the auth service being unreachable.
var ErrUnauthenticated = errors.New("session is not authenticated")

type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

type TokenGenerator interface {
	GenerateServiceToken(service string) (string, error)
}

func New(cfg *config.Config, tokenGenerator TokenGenerator) (*Client, error) {
	serviceToken, err := tokenGenerator.GenerateServiceToken(cfg.Service.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate service token: %w", err)
	}

	return &Client{
		baseURL:      cfg.Auth.BaseURL,
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: cfg.Auth.Timeout,
		},
	}, nil
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// ValidateSession asks the auth service whether the session cookie belongs
// to a signed-in account and returns that account's identity.
func (c *Client) ValidateSession(ctx context.Context, sessionID string) (*model.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/interne/auth/session", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sessionID})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthenticated
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var identity model.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if identity.ID == "" || identity.Handle == "" {
		return nil, fmt.Errorf("auth service returned an incomplete identity")
	}

	return &identity, nil
}
