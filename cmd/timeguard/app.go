package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/timeguard/pkg/config"
	"github.com/dmitrymomot/timeguard/pkg/constraint"
	"github.com/dmitrymomot/timeguard/pkg/logger"
)

const name = "timeguard"

// overridden during build with ldflags
var version = "dev"

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

func parseOutputFormat(cmd *cli.Command) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(cmd.String("format"))); f {
	case formatText, formatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, cmd.String("format"))
	}
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Value:   string(formatText),
	Usage:   "Output format: text or json",
}

// app holds the state shared by subcommands. It is filled by before.
type app struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	cfg    config.Timeguard
	system *time.Location
	log    *slog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
		log:    logger.Discard(),
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Validate date/time values against zone-aware constraints",
		Version: version,
		Description: `timeguard evaluates rule documents (YAML or JSON) that attach date/time
constraints to the fields of a record.

Environment:
  TIMEGUARD_SYSTEM_ZONE  zone of the "system" policy (default Local)
  TIMEGUARD_LANG         message language (default en)
  TIMEGUARD_LOG_LEVEL    debug, info, warn or error (default info)
  TIMEGUARD_LOG_FORMAT   text or json (default text)`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load variables from .env files before reading the environment",
			},
			&cli.StringFlag{
				Name:  "system-zone",
				Usage: "Zone of the \"system\" policy, overrides TIMEGUARD_SYSTEM_ZONE",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text, json)",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.checkCmd(),
			a.catalogCmd(),
			a.zonesCmd(),
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if files := cmd.StringSlice("env-file"); len(files) > 0 {
		if err := config.LoadEnv(files...); err != nil {
			return ctx, err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return ctx, err
	}
	if cmd.IsSet("system-zone") {
		a.cfg.SystemZone = cmd.String("system-zone")
	}
	if cmd.IsSet("log-level") {
		a.cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		a.cfg.LogFormat = cmd.String("log-format")
	}

	loc, err := a.cfg.Location()
	if err != nil {
		return ctx, err
	}
	a.system = loc

	l, err := newLogger(a.cfg, a.stderr)
	if err != nil {
		return ctx, err
	}
	a.log = l
	a.log.DebugContext(ctx, "starting",
		slog.String("version", version),
		logger.Zone(a.system.String()),
		slog.String("lang", a.cfg.Lang))
	return ctx, nil
}

// settings are the constraint options every command compiles with.
func (a *app) settings() []constraint.Option {
	return []constraint.Option{
		constraint.WithSystemZone(a.system),
		constraint.WithClock(a.now),
		constraint.WithLogger(a.log),
	}
}

func newLogger(cfg config.Timeguard, w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if cfg.LogLevel == "" {
		cfg.LogLevel = level.String()
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		return nil, errors.Join(ErrInvalidLogger, err)
	}
	format := logger.Format(strings.ToLower(cfg.LogFormat))
	if format == "" {
		format = logger.FormatText
	}
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidLogger, cfg.LogFormat)
	}
	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithService(name),
	), nil
}
