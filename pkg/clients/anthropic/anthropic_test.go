package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))

		var body messageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, DefaultModel, body.Model)
		assert.Equal(t, "system prompt", body.System)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Weed at 3 weeks."},{"type":"text","text":" Apply urea at 6 weeks. "}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
	got, err := client.Complete(context.Background(), "system prompt", "maize care?")
	require.NoError(t, err)
	assert.Equal(t, "Weed at 3 weeks.\n\nApply urea at 6 weeks.", got)
}

func TestComplete_Errors(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error"}}`))
		}))
		defer server.Close()

		_, err := NewClient(Config{BaseURL: server.URL, APIKey: "k"}).Complete(context.Background(), "s", "u")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=429")
	})

	t.Run("Empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"content":[]}`))
		}))
		defer server.Close()

		_, err := NewClient(Config{BaseURL: server.URL, APIKey: "k"}).Complete(context.Background(), "s", "u")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}
