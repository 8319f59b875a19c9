package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
)

const maxErrorBody = 64 << 10

// Client - calls the remote game service. It keeps a loading flag while calls are
// outstanding and holds the error of the last completed call.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client

	inflight atomic.Int32

	mu      sync.Mutex
	lastErr error
}

func New(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:  logger.With("component", "rest-client"),
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Loading - true while at least one call is outstanding.
func (that *Client) Loading() bool {
	return that.inflight.Load() > 0
}

// Err - the failure of the last completed call, nil after a success or ClearError.
func (that *Client) Err() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.lastErr
}

func (that *Client) ClearError() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.lastErr = nil
}

// track - runs one logical call, flipping the loading flag around it and recording its result.
func (that *Client) track(ctx context.Context, fn func(ctx context.Context) error) error {
	that.inflight.Add(1)
	defer that.inflight.Add(-1)

	err := fn(ctx)

	that.mu.Lock()
	that.lastErr = err
	that.mu.Unlock()

	return err
}

// roundTrip - sends one JSON request and decodes a 2xx body into out.
func (that *Client) roundTrip(ctx context.Context, op, method, path string, in, out any) (int, error) {
	log := that.logger.With("method", op)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, that.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("failed to build %s request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := that.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "error", err)
		return 0, &apperror.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	log.Debug("response received", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, readServiceError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return resp.StatusCode, &apperror.NetworkError{Op: op, Err: err}
		}
		return resp.StatusCode, malformed(resp.StatusCode, fmt.Errorf("decode %s body: %w", op, err))
	}

	return resp.StatusCode, nil
}

func readServiceError(resp *http.Response) error {
	serviceErr := &apperror.ServiceError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return serviceErr
	}

	var payload errorResponse
	if err = json.Unmarshal(raw, &payload); err != nil {
		return serviceErr
	}

	if detail, ok := payload.Detail.(string); ok && detail != "" {
		serviceErr.Message = detail
	} else if payload.Message != "" {
		serviceErr.Message = payload.Message
	}

	return serviceErr
}

func malformed(status int, err error) error {
	return &apperror.ServiceError{
		Status:  status,
		Message: "The game service sent an invalid response.",
		Err:     fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err),
	}
}
