package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

type connectionAPI interface {
	Health(ctx context.Context) error
	Difficulties(ctx context.Context) (entity.DifficultyCatalog, error)
	ClearError()
}

// ConnectionMonitor - tracks whether the game service is usable and holds the last fetched catalog.
type ConnectionMonitor struct {
	logger *slog.Logger
	api    connectionAPI

	mu        sync.RWMutex
	connected bool
	catalog   entity.DifficultyCatalog
	onChange  func(connected bool)
}

func NewConnectionMonitor(logger *slog.Logger, api connectionAPI) *ConnectionMonitor {
	return &ConnectionMonitor{
		logger: logger.With("component", "connection-monitor"),
		api:    api,
	}
}

// OnChange - fn is called after every flip between connected and disconnected.
func (that *ConnectionMonitor) OnChange(fn func(connected bool)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.onChange = fn
}

// Init - the eager check at start up.
func (that *ConnectionMonitor) Init(ctx context.Context) error {
	return that.check(ctx)
}

// Retry - checks again and clears the held API error when the service is back.
func (that *ConnectionMonitor) Retry(ctx context.Context) error {
	if err := that.check(ctx); err != nil {
		return err
	}

	that.api.ClearError()

	return nil
}

func (that *ConnectionMonitor) Connected() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.connected
}

// Catalog - the last catalog fetched successfully, nil before the first one.
func (that *ConnectionMonitor) Catalog() entity.DifficultyCatalog {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.catalog
}

// Watch - re-checks every interval until ctx is done. Zero interval disables it.
func (that *ConnectionMonitor) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := that.check(ctx); err != nil {
				that.logger.Debug("periodic check failed", "error", err)
			}
		}
	}
}

func (that *ConnectionMonitor) check(ctx context.Context) error {
	if err := that.api.Health(ctx); err != nil {
		that.setConnected(false)
		return fmt.Errorf("health check failed: %w", err)
	}

	catalog, err := that.api.Difficulties(ctx)
	if err != nil {
		that.setConnected(false)
		return fmt.Errorf("failed to get difficulties: %w", err)
	}

	that.mu.Lock()
	that.catalog = catalog
	that.mu.Unlock()

	that.setConnected(true)

	return nil
}

func (that *ConnectionMonitor) setConnected(connected bool) {
	that.mu.Lock()
	changed := that.connected != connected
	that.connected = connected
	onChange := that.onChange
	that.mu.Unlock()

	if !changed {
		return
	}

	that.logger.Info("connection state changed", "connected", connected)

	if onChange != nil {
		onChange(connected)
	}
}
