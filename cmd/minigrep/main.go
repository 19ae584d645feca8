// Package main implements minigrep: print the lines of a file that match a query.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/UnendingLoop/minigrep/internal/buildinfo"
	"github.com/UnendingLoop/minigrep/internal/config"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cmd := newRootCmd(os.LookupEnv)

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(buildinfo.Version()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			fmt.Fprintln(w, diagnostic(err))
		}),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(lookup parser.LookupFunc) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "minigrep <query> <file_path>",
		Short: "Print lines of a file that match a query",
		Long: `minigrep prints every line of file_path that contains query.

Set IGNORE_CASE to match case-insensitively and REGEX to treat query
as a regular expression. Only the presence of a variable matters.
REGEX takes priority when both are set.`,
		Example:       `IGNORE_CASE=1 minigrep to poem.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(config.LogConfig{Level: "debug", File: logFile, MaxSize: 10, MaxBackups: 1})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return run(cmd.OutOrStdout(), args, lookup, log)
		},
	}
	// всё после первого позиционного аргумента - тоже позиционные аргументы
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&logFile, "log-file", "", "append a JSON log of the run to this file")

	return cmd
}

func run(out io.Writer, args []string, lookup parser.LookupFunc, log *zap.Logger) error {
	cfg, err := parser.FromEnv(args, lookup)
	if err != nil {
		log.Debug("bad arguments", zap.Strings("args", args), zap.Error(err))
		return err
	}

	// сразу проверяем корректность регулярки, до чтения файла
	m, err := matcher.New(cfg)
	if err != nil {
		log.Debug("bad pattern", zap.String("query", cfg.Query), zap.Error(err))
		return err
	}

	contents, err := reader.ReadFile(cfg.FilePath)
	if err != nil {
		log.Debug("failed to read input", zap.String("file", cfg.FilePath), zap.Error(err))
		return err
	}

	results := processor.SearchWith(m, contents)
	log.Debug("search finished",
		zap.String("file", cfg.FilePath),
		zap.Stringer("mode", m.Mode()),
		zap.Int("lines_matched", len(results)),
	)

	w := bufio.NewWriter(out)
	for _, line := range results {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}

func diagnostic(err error) string {
	if model.IsConfigError(err) {
		return "Problem parsing the arguments"
	}
	return "Error: " + err.Error()
}
