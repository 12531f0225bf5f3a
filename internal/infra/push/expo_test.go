//go:build unit

package push_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"shopdispatch/internal/infra/push"
	"shopdispatch/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedBatch struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

func newGateway(t *testing.T, status func(batch int) int) (*httptest.Server, func() []capturedBatch) {
	t.Helper()

	var mu sync.Mutex
	var batches []capturedBatch

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var msg capturedBatch
		require.NoError(t, json.Unmarshal(body, &msg))

		mu.Lock()
		n := len(batches)
		batches = append(batches, msg)
		mu.Unlock()

		code := http.StatusOK
		if status != nil {
			code = status(n)
		}
		w.WriteHeader(code)
		fmt.Fprint(w, `{"data":[]}`)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []capturedBatch {
		mu.Lock()
		defer mu.Unlock()
		out := make([]capturedBatch, len(batches))
		copy(out, batches)
		return out
	}
}

func newClient(url string, batchSize int) *push.Client {
	return push.NewClient(config.PushConfig{
		AccessToken: "test-token",
		GatewayURL:  url,
		BatchSize:   batchSize,
		Timeout:     5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func makeTokens(n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("ExponentPushToken[%04d]", i)
	}
	return tokens
}

func TestClientEnabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	withToken := push.NewClient(config.PushConfig{AccessToken: "x"}, logger)
	assert.True(t, withToken.Enabled())

	withoutToken := push.NewClient(config.PushConfig{}, logger)
	assert.False(t, withoutToken.Enabled())
}

func TestSendBatches(t *testing.T) {
	t.Run("splits tokens into gateway-sized groups", func(t *testing.T) {
		srv, received := newGateway(t, nil)
		client := newClient(srv.URL, 90)

		results := client.SendBatches(context.Background(), makeTokens(200), "title", "body", map[string]string{"request_id": "abc"})

		require.Len(t, results, 3)
		assert.Equal(t, 90, results[0].TokenCount)
		assert.Equal(t, 90, results[1].TokenCount)
		assert.Equal(t, 20, results[2].TokenCount)
		for _, r := range results {
			assert.True(t, r.OK())
		}

		batches := received()
		require.Len(t, batches, 3)
		assert.Len(t, batches[0].To, 90)
		assert.Len(t, batches[2].To, 20)
		assert.Equal(t, "title", batches[0].Title)
		assert.Equal(t, "abc", batches[0].Data["request_id"])
	})

	t.Run("single partial batch", func(t *testing.T) {
		srv, received := newGateway(t, nil)
		client := newClient(srv.URL, 90)

		results := client.SendBatches(context.Background(), makeTokens(5), "t", "b", nil)

		require.Len(t, results, 1)
		assert.Equal(t, 5, results[0].TokenCount)
		assert.Len(t, received(), 1)
	})

	t.Run("no tokens means no requests", func(t *testing.T) {
		srv, received := newGateway(t, nil)
		client := newClient(srv.URL, 90)

		results := client.SendBatches(context.Background(), nil, "t", "b", nil)

		assert.Empty(t, results)
		assert.Empty(t, received())
	})

	t.Run("one failing batch does not abort the rest", func(t *testing.T) {
		srv, received := newGateway(t, func(batch int) int {
			if batch == 1 {
				return http.StatusBadGateway
			}
			return http.StatusOK
		})
		client := newClient(srv.URL, 10)

		results := client.SendBatches(context.Background(), makeTokens(30), "t", "b", nil)

		require.Len(t, results, 3)
		assert.True(t, results[0].OK())
		assert.False(t, results[1].OK())
		assert.Contains(t, results[1].Error, "502")
		assert.True(t, results[2].OK())
		assert.Len(t, received(), 3)
	})

	t.Run("unreachable gateway reports every batch failed", func(t *testing.T) {
		srv, _ := newGateway(t, nil)
		url := srv.URL
		srv.Close()

		client := newClient(url, 10)
		results := client.SendBatches(context.Background(), makeTokens(20), "t", "b", nil)

		require.Len(t, results, 2)
		for _, r := range results {
			assert.False(t, r.OK())
		}
	})
}
