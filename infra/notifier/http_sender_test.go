package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSender(url string) *HTTPSender {
	return NewHTTPSender(&config.Email{
		ApiKey:      "test-key",
		ApiUrl:      url,
		From:        "Fortiz Bank <no-reply@fortizbank.com>",
		HTTPTimeout: time.Second,
		MaxElapsed:  2 * time.Second,
	}, slog.Default())
}

func TestHTTPSender_Send(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestSender(server.URL).Send(context.Background(), "jane@example.com", "transfer_completed",
		map[string]string{"amount": "40.00"})

	require.NoError(t, err)
	assert.Equal(t, []string{"jane@example.com"}, got.To)
	assert.Equal(t, "transfer_completed", got.Template)
	assert.Equal(t, "40.00", got.Params["amount"])
}

func TestHTTPSender_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	err := newTestSender(server.URL).Send(context.Background(), "jane@example.com", "kyc_approved", nil)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPSender_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid recipient"}`))
	}))
	defer server.Close()

	err := newTestSender(server.URL).Send(context.Background(), "nobody", "kyc_rejected", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPSender_StopsWhenContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := newTestSender(server.URL).Send(ctx, "jane@example.com", "transfer_cancelled", nil)
	assert.Error(t, err)
}

func TestLogSender_NeverFails(t *testing.T) {
	err := NewLogSender(slog.Default()).Send(context.Background(), "jane@example.com", "transfer_completed", nil)
	assert.NoError(t, err)
}
