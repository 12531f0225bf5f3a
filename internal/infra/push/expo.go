// Package push talks to an Expo-compatible push gateway. Delivery is
// best-effort and at-least-once; nothing here participates in the request
// store's consistency boundary.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"shopdispatch/internal/pkg/config"
	"shopdispatch/internal/usecase/shared"
)

type message struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type Client struct {
	accessToken string
	gatewayURL  string
	batchSize   int
	httpClient  *http.Client
	logger      *slog.Logger
}

func NewClient(cfg config.PushConfig, logger *slog.Logger) *Client {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 90
	}
	return &Client{
		accessToken: cfg.AccessToken,
		gatewayURL:  cfg.GatewayURL,
		batchSize:   batchSize,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
}

func (c *Client) Enabled() bool {
	return c.accessToken != ""
}

// SendBatches splits tokens into gateway-sized groups and submits each as an
// independent request. A failed batch is recorded and the remaining batches
// still go out.
func (c *Client) SendBatches(ctx context.Context, tokens []string, title, body string, data map[string]string) []shared.PushBatchResult {
	var results []shared.PushBatchResult

	for batch := 0; batch*c.batchSize < len(tokens); batch++ {
		start := batch * c.batchSize
		end := start + c.batchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		group := tokens[start:end]

		result := shared.PushBatchResult{Batch: batch, TokenCount: len(group)}
		if err := c.sendOne(ctx, message{To: group, Title: title, Body: body, Data: data}); err != nil {
			result.Error = err.Error()
			c.logger.Warn("push batch failed", "batch", batch, "tokens", len(group), "error", err.Error())
		}
		results = append(results, result)
	}

	return results
}

func (c *Client) sendOne(ctx context.Context, msg message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push gateway returned %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}
