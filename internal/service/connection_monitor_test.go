package service_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/service"
	"github.com/rocketscienceinc/tictactoe-client/testing/suite"
	"github.com/rocketscienceinc/tictactoe-client/transport/rest"
)

func newMonitor(s *suite.Suite) (*service.ConnectionMonitor, *rest.Client) {
	client := rest.New(s.Logger, s.BaseURL, 2*time.Second)
	return service.NewConnectionMonitor(s.Logger, client), client
}

func TestConnectionMonitor_Init(t *testing.T) {
	t.Run("Healthy service connects and loads the catalog", func(t *testing.T) {
		// Given: A running game service
		ctx, s := suite.New(t)
		monitor, _ := newMonitor(s)

		// When: Running the start up check
		err := monitor.Init(ctx)

		// Then: The monitor is connected with a catalog
		require.NoError(t, err)
		assert.True(t, monitor.Connected())
		assert.True(t, monitor.Catalog().Selectable(entity.EasyDifficulty))
	})

	t.Run("Failed health check stays disconnected", func(t *testing.T) {
		// Given: An unhealthy service
		ctx, s := suite.New(t)
		monitor, _ := newMonitor(s)
		s.Backend.Enqueue(suite.RouteHealth, suite.Reply{Status: http.StatusServiceUnavailable})

		// When: Running the start up check
		err := monitor.Init(ctx)

		// Then: The catalog is not fetched
		require.Error(t, err)
		assert.False(t, monitor.Connected())
		assert.Nil(t, monitor.Catalog())
		assert.Equal(t, 0, s.Backend.Calls(suite.RouteDifficulties))
	})

	t.Run("Failed catalog fetch is disconnected", func(t *testing.T) {
		// Given: A healthy service with a broken catalog
		ctx, s := suite.New(t)
		monitor, _ := newMonitor(s)
		s.Backend.Enqueue(suite.RouteDifficulties, suite.Reply{Status: http.StatusInternalServerError})

		// When: Running the start up check
		err := monitor.Init(ctx)

		// Then: The monitor is disconnected
		require.Error(t, err)
		assert.False(t, monitor.Connected())
	})
}

func TestConnectionMonitor_Retry(t *testing.T) {
	t.Run("Recovers and clears the held error", func(t *testing.T) {
		// Given: A failed start up check
		ctx, s := suite.New(t)
		monitor, client := newMonitor(s)
		s.Backend.Enqueue(suite.RouteHealth, suite.Reply{Status: http.StatusBadGateway})
		require.Error(t, monitor.Init(ctx))

		var flips []bool
		monitor.OnChange(func(connected bool) {
			flips = append(flips, connected)
		})

		// When: Retrying after the service came back
		err := monitor.Retry(ctx)

		// Then: Connected, the error is cleared and the change was announced
		require.NoError(t, err)
		assert.True(t, monitor.Connected())
		assert.NoError(t, client.Err())
		assert.Equal(t, []bool{true}, flips)
	})

	t.Run("Failure leaves the monitor disconnected", func(t *testing.T) {
		// Given: A connected monitor
		ctx, s := suite.New(t)
		monitor, client := newMonitor(s)
		require.NoError(t, monitor.Init(ctx))

		var flips []bool
		monitor.OnChange(func(connected bool) {
			flips = append(flips, connected)
		})
		s.Backend.Enqueue(suite.RouteHealth, suite.Reply{Status: http.StatusServiceUnavailable})

		// When: A retry fails
		err := monitor.Retry(ctx)

		// Then: Disconnected with the error held
		require.Error(t, err)
		assert.False(t, monitor.Connected())
		assert.Error(t, client.Err())
		assert.Equal(t, []bool{false}, flips)
	})
}

func TestConnectionMonitor_Watch(t *testing.T) {
	t.Run("Zero interval returns at once", func(t *testing.T) {
		// Given: A monitor
		ctx, s := suite.New(t)
		monitor, _ := newMonitor(s)

		// When: Watching with polling disabled
		monitor.Watch(ctx, 0)

		// Then: Nothing was checked
		assert.Equal(t, 0, s.Backend.Calls(suite.RouteHealth))
	})

	t.Run("Polls until cancelled", func(t *testing.T) {
		// Given: A disconnected monitor and a healthy service
		ctx, s := suite.New(t)
		monitor, _ := newMonitor(s)

		var connected atomic.Bool
		monitor.OnChange(func(value bool) {
			connected.Store(value)
		})

		watchCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			monitor.Watch(watchCtx, 10*time.Millisecond)
			close(done)
		}()

		// When: A few ticks pass
		require.Eventually(t, connected.Load, time.Second, 5*time.Millisecond)
		cancel()

		// Then: The loop stops after cancellation
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("watch did not stop")
		}
		assert.Positive(t, s.Backend.Calls(suite.RouteHealth))
	})
}
