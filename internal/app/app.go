package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"schema-normalizer/internal/config"
	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/rewrite"
	"schema-normalizer/internal/schemafile"
	"schema-normalizer/internal/watch"
)

// Options are the command-line settings of a run.
type Options struct {
	// ConfigPath is a YAML config file; empty means config.Default().
	ConfigPath string
	// SchemaPath overrides the schema path from the config.
	SchemaPath string

	Check  bool
	DryRun bool
	Strict bool
	Watch  bool

	LogLevel  string
	LogFormat string
}

// App runs normalization passes over one schema file.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *config.Config
	opts   Options
}

// New loads and validates the configuration. Human-readable results go to
// outW, logs to logW.
func New(outW, logW io.Writer, opts Options) (*App, error) {
	logger := newLogger(opts.LogLevel, opts.LogFormat, logW)

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.LoadFile(opts.ConfigPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if opts.SchemaPath != "" {
		cfg.Schema = opts.SchemaPath
	}

	diags := config.Validate(cfg)
	logDiagnostics(logger, *diags)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("configuration loaded",
		"schema", cfg.Schema,
		"target_models", len(cfg.TargetModels),
		"relation_renames", len(cfg.RelationRenames))

	return &App{outW: outW, logger: logger, cfg: cfg, opts: opts}, nil
}

// Config returns the effective configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// PrintConfig writes the effective configuration as YAML.
func (a *App) PrintConfig() error {
	data, err := config.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	_, err = a.outW.Write(data)

	return err
}

// Run normalizes the schema once, or keeps doing so on every change in
// watch mode until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if !a.opts.Watch {
		return a.RunOnce(ctx)
	}

	if err := a.RunOnce(ctx); err != nil {
		a.logger.Error("normalization failed", "path", a.cfg.Schema, "error", err)
	}

	return watch.Run(ctx, a.logger, a.cfg.Schema, watch.DefaultDebounce, a.RunOnce)
}

// RunOnce reads the schema, applies the configured passes and, unless in
// check or dry-run mode, replaces the file when something changed. A schema
// with error diagnostics is never written.
func (a *App) RunOnce(_ context.Context) error {
	path := a.cfg.Schema

	text, err := schemafile.Read(path)
	if err != nil {
		return err
	}

	passes := rewrite.FromConfig(a.cfg)
	for _, p := range passes {
		a.logger.Debug("pass enabled", "pass", p.Name())
	}

	res, err := rewrite.Run(text, passes...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logDiagnostics(a.logger, res.Diagnostics)

	if err := res.Err(); err != nil {
		return fmt.Errorf("%s left unchanged: %w", path, err)
	}

	if a.opts.Strict && res.Diagnostics.HasWarnings() {
		return fmt.Errorf("%s left unchanged: %w", path, ErrStrict)
	}

	switch {
	case a.opts.DryRun:
		_, err := io.WriteString(a.outW, res.Schema)
		return err

	case a.opts.Check && res.Changed:
		return &ExitError{
			Code:    ExitNeedsRewrite,
			Message: fmt.Sprintf("%s is not normalized: %d edit(s) pending", path, res.Edits()),
		}

	case !res.Changed:
		fmt.Fprintf(a.outW, "%s is already normalized\n", path)
		return nil
	}

	if err := schemafile.Write(path, res.Schema); err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "%s updated: %d edit(s)\n", path, res.Edits())

	return nil
}

func logDiagnostics(logger *slog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		attrs := []any{"code", d.Code}
		if d.Model != "" {
			attrs = append(attrs, "model", d.Model)
		}

		if d.Field != "" {
			attrs = append(attrs, "field", d.Field)
		}

		if d.Line > 0 {
			attrs = append(attrs, "line", d.Line)
		}

		if len(d.Suggestions) > 0 {
			attrs = append(attrs, "suggestions", d.Suggestions)
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			logger.Error(d.Message, attrs...)
		case diagnostic.DiagnosticWarning:
			logger.Warn(d.Message, attrs...)
		default:
			logger.Info(d.Message, attrs...)
		}
	}
}
