package suite

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Backend *Backend
	BaseURL string
}

// New - starts an in-memory game service for the duration of the test.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	backend := NewBackend()
	server := httptest.NewServer(backend.Handler())

	t.Cleanup(func() {
		t.Helper()

		server.Close()
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Backend: backend,
		BaseURL: server.URL,
	}
}
