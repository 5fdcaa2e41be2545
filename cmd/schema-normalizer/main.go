// Package main provides the CLI entrypoint for schema-normalizer.
//
// schema-normalizer rewrites a Prisma schema in place so that:
//   - target models carry @@map("<table name>") before they are renamed
//   - relation fields reference models by their PascalCase name
//
// Usage:
//
//	schema-normalizer [-config normalize.yaml] [-schema prisma/schema.prisma]
//	                  [-check | -dry-run] [-strict] [-watch]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"schema-normalizer/internal/app"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *app.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(app.ExitFailure)
	}
}

// run parses flags and executes one normalization run, or a watch loop.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	fs := flag.NewFlagSet("schema-normalizer", flag.ContinueOnError)
	fs.SetOutput(errW)

	var (
		opts        app.Options
		printConfig bool
	)

	fs.StringVar(&opts.ConfigPath, "config", "", "YAML config file (built-in defaults if empty)")
	fs.StringVar(&opts.SchemaPath, "schema", "", "schema file to rewrite (overrides the config)")
	fs.BoolVar(&opts.Check, "check", false, "exit with status 3 if the schema needs rewriting; write nothing")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "print the rewritten schema instead of writing it")
	fs.BoolVar(&opts.Strict, "strict", false, "treat warnings such as missing models as failures")
	fs.BoolVar(&opts.Watch, "watch", false, "rewrite again whenever the schema file changes")
	fs.BoolVar(&printConfig, "print-config", false, "print the effective configuration and exit")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&opts.LogFormat, "log-format", "text", "log format: text, json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return &app.ExitError{Code: 2, Message: err.Error()}
	}

	if opts.Check && opts.DryRun {
		return &app.ExitError{Code: 2, Message: "-check and -dry-run are mutually exclusive"}
	}

	a, err := app.New(outW, errW, opts)
	if err != nil {
		return err
	}

	if printConfig {
		return a.PrintConfig()
	}

	return a.Run(ctx)
}
