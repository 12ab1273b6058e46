package digest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliver_NotConfigured(t *testing.T) {
	result := NewNotifier("").Deliver(context.Background(), "digest body")
	assert.False(t, result.Sent)
	assert.Equal(t, "webhook not configured", result.Reason)
}

func TestDeliver_Success(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	result := NewNotifier(srv.URL).Deliver(context.Background(), "digest body")
	assert.True(t, result.Sent)
	assert.Empty(t, result.Reason)
	require.NotNil(t, received)
	assert.Equal(t, "digest body", received["text"])
}

func TestDeliver_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := NewNotifier(srv.URL).Deliver(context.Background(), "digest body")
	assert.False(t, result.Sent)
	assert.Contains(t, result.Reason, "500")
}

func TestDeliver_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // deliberately dead endpoint

	result := NewNotifier(srv.URL).Deliver(context.Background(), "digest body")
	assert.False(t, result.Sent)
	assert.NotEmpty(t, result.Reason)
}
