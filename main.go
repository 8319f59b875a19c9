package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/tictactoe-client/internal"
	"github.com/rocketscienceinc/tictactoe-client/internal/config"
)

// main - is the entry point of the application. It parses flags, initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cmd := &cli.Command{
		Name:  "tictactoe-client",
		Usage: "play tic-tac-toe against a trained AI in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the yaml config file",
				Value:   "config.yml",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "game service address, overrides the config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	conf := initConfig(cmd.String("config"))

	if baseURL := cmd.String("base-url"); baseURL != "" {
		conf.API.BaseURL = baseURL
	}

	if level := cmd.String("log-level"); level != "" {
		conf.LogLevel = level
	}

	logger, closer, err := initLogger(conf)
	if err != nil {
		return err
	}
	defer closer.Close()

	return app.RunApp(logger, conf)
}

// initialize config.
func initConfig(path string) *config.Config {
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, path)
	}

	return config.MustLoad(path)
}

// initialize logger. The terminal belongs to the UI, so logs go to a file.
func initLogger(conf *config.Config) (*slog.Logger, io.Closer, error) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), file, nil
}
