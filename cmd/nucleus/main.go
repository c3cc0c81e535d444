package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/felixgeelhaar/nucleus/adapter/cli/task"
	"github.com/felixgeelhaar/nucleus/adapter/cli/user"
	"github.com/felixgeelhaar/nucleus/internal/app"
	"github.com/felixgeelhaar/nucleus/pkg/config"
	"github.com/felixgeelhaar/nucleus/pkg/observability"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", observability.ErrorKey, err)
		os.Exit(1)
	}

	logCfg := observability.DefaultLogConfig()
	if cfg.LogLevel != "" {
		logCfg.Level = observability.LogLevel(cfg.LogLevel)
	}
	if cfg.LogFormat != "" {
		logCfg.Format = observability.LogFormat(cfg.LogFormat)
	}
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	container := app.NewContainer(cfg, logger)
	ctx := context.Background()
	if cfg.SeedDemoData {
		container.SeedDemoData(ctx)
	}
	cli.SetApp(container)

	cli.AddCommand(task.Cmd)
	cli.AddCommand(user.Cmd)
	cli.Execute()
}

// loadConfig pre-scans the arguments for --config because cobra only
// parses flags inside Execute, after the container is already wired.
func loadConfig(args []string) (*config.Config, error) {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return config.LoadFile(args[i+1])
			}
		case strings.HasPrefix(arg, "--config="):
			return config.LoadFile(strings.TrimPrefix(arg, "--config="))
		case strings.HasPrefix(arg, "-c="):
			return config.LoadFile(strings.TrimPrefix(arg, "-c="))
		}
	}
	return config.Load()
}
