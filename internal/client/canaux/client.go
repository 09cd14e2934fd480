package canaux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/plateforme-chat/chats-service/internal/config"
)

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
		baseURL:      cfg.Canaux.BaseURL,
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: cfg.Canaux.Timeout,
		},
	}, nil
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type memberChannelsRequest struct {
	User string `json:"utilisateur"`
}

type memberChannel struct {
	ID string `json:"id"`
}

// MemberChannels returns every channel the handle currently belongs to,
// as owner or accepted member. Called once per identity hydration.
func (c *Client) MemberChannels(ctx context.Context, handle string) ([]string, error) {
	payload, err := json.Marshal(memberChannelsRequest{User: handle})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/interne/canal/inscrit", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var channels []memberChannel
	if err := json.NewDecoder(resp.Body).Decode(&channels); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	channelIDs := make([]string, 0, len(channels))
	for _, channel := range channels {
		channelIDs = append(channelIDs, channel.ID)
	}

	return channelIDs, nil
}
