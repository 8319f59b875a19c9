package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-client/internal/config"
	"github.com/rocketscienceinc/tictactoe-client/internal/service"
	"github.com/rocketscienceinc/tictactoe-client/internal/tui"
	"github.com/rocketscienceinc/tictactoe-client/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-client/transport/rest"
)

const endGameTimeout = 3 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := rest.New(logger, conf.API.BaseURL, conf.API.Timeout)
	gameManager := usecase.NewGameManager(logger, client)
	monitor := service.NewConnectionMonitor(logger, client)

	model := tui.New(ctx, gameManager, monitor, tui.Options{
		Difficulty: conf.Game.Difficulty,
		Size:       conf.Game.Size,
		BaseURL:    conf.API.BaseURL,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	monitor.OnChange(func(connected bool) {
		program.Send(tui.ConnectionChangedMsg(connected))
	})

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			program.Quit()
		case <-ctx.Done():
		}
	}()

	if conf.Monitor.Interval > 0 {
		log.Info("Starting connection watch", "interval", conf.Monitor.Interval)
		go monitor.Watch(ctx, conf.Monitor.Interval)
	}

	log.Info("Starting game client", "base_url", conf.API.BaseURL)

	_, runErr := program.Run()

	endCtx, endCancel := context.WithTimeout(context.Background(), endGameTimeout)
	defer endCancel()
	gameManager.End(endCtx)

	if runErr != nil {
		return fmt.Errorf("terminal UI error: %w", runErr)
	}

	log.Info("Game client stopped")

	return nil
}
