package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/lett-lang/lett/pkg/lett"
)

// Config holds the application configuration.
type Config struct {
	Debug bool
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "lett [flags] [file]",
		Short: "Lett language interpreter",
		Long: `Lett is a small statically-typed expression language with
integers, booleans, first-class procedures, and runtime assertions.
Programs are type checked before they run; tail calls run in constant
stack space.`,
		Example: `  # Run a Lett script
  lett script.lett

  # Start an interactive REPL
  lett

  # Run with debug logging enabled
  lett --debug script.lett`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg)

			if len(args) == 1 {
				return run(cmd.Context(), args[0])
			}
			return runREPL(cmd.Context())
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cfg Config) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func run(ctx context.Context, path string) error {
	result, err := lett.RunFile(ctx, path)
	if err != nil {
		return err
	}
	fmt.Printf("%s : %s\n", result.Value, result.Type)
	return nil
}
