package rest

import (
	"context"
	"net/http"
)

// Health - any 2xx answer from /health means the service is up.
func (that *Client) Health(ctx context.Context) error {
	return that.track(ctx, func(ctx context.Context) error {
		_, err := that.roundTrip(ctx, "health", http.MethodGet, "/health", nil, nil)
		return err
	})
}
