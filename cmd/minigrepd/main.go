// Package main implements minigrepd, an HTTP node that runs the minigrep search over posted content.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/buildinfo"
	"github.com/UnendingLoop/minigrep/internal/config"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var configPath, address string

	cmd := &cobra.Command{
		Use:   "minigrepd",
		Short: "HTTP search node for minigrep",
		Long: `minigrepd serves POST /search: the body carries query, content
and the ignore_case/regex toggles, the response carries the matching
lines and their xxhash64 checksum. GET /ping reports liveness.`,
		Example: `minigrepd --config minigrepd.yaml --address :8081`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.Path(configPath))
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config (default $"+config.EnvConfigPath+")")
	cmd.Flags().StringVar(&address, "address", "", "listen address, overrides the config file")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(buildinfo.Version()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := transport.NewSearchServer(cfg.Address, processor.Processor{}, log, transport.Options{
		GinMode:         cfg.GinMode,
		MaxContentBytes: cfg.MaxContentBytes,
	})

	log.Info("starting minigrepd",
		zap.String("version", buildinfo.Version()),
		zap.Int64("max_content_bytes", cfg.MaxContentBytes),
	)
	return appmode.RunServer(ctx, stop, srv, log, cfg.ShutdownTimeout)
}
