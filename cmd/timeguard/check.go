package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/timeguard/pkg/i18n"
	"github.com/dmitrymomot/timeguard/pkg/logger"
	"github.com/dmitrymomot/timeguard/pkg/ruleset"
	"github.com/dmitrymomot/timeguard/pkg/validator"
)

func (a *app) checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate a record against a rule document",
		Description: `Compile the rules of a YAML or JSON rule document and evaluate them against
the fields of a record file. Missing and null fields are valid.

The command exits with status 2 when the record violates a rule.

Examples:
  timeguard check --rules shop.yaml --input order.json
  timeguard check -r shop.yaml -i order.yaml --lang de --format json
  timeguard check -r shop.yaml -i order.json --messages messages.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rules",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Path to the rule document (.yaml, .yml or .json)",
			},
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "Path to the record to validate (.yaml, .yml or .json)",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Message language, overrides TIMEGUARD_LANG",
			},
			&cli.StringFlag{
				Name:    "messages",
				Aliases: []string{"m"},
				Usage:   "Message catalogue (.yaml, .yml or .json) overriding the built-in messages",
			},
			formatFlag,
		},
		Action: a.check,
	}
}

func (a *app) check(ctx context.Context, cmd *cli.Command) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	rulesPath := cmd.String("rules")
	inputPath := cmd.String("input")
	lang := a.cfg.Lang
	if cmd.IsSet("lang") {
		lang = cmd.String("lang")
	}

	opts := []ruleset.Option{
		ruleset.WithSettings(a.settings()...),
		ruleset.WithLogger(a.log),
	}
	if path := cmd.String("messages"); path != "" {
		tr, err := a.translator(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to load messages from %q: %w", path, err)
		}
		opts = append(opts, ruleset.WithTranslator(tr))
	}

	a.log.InfoContext(ctx, "loading rules", logger.Source(rulesPath))
	rs, err := ruleset.Load(rulesPath, opts...)
	if err != nil {
		return fmt.Errorf("failed to load rules from %q: %w", rulesPath, err)
	}

	a.log.InfoContext(ctx, "loading record", logger.Source(inputPath))
	record, err := ruleset.ReadRecord(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load record from %q: %w", inputPath, err)
	}

	err = rs.Validate(i18n.WithLanguage(ctx, lang), record)
	if err != nil && !validator.IsValidationError(err) {
		return err
	}
	violations := validator.ExtractValidationErrors(err)
	a.log.InfoContext(ctx, "record checked",
		logger.Source(inputPath),
		logger.Count(len(violations)),
		slog.Int("fields", len(rs.Fields())))

	if err := writeReport(a.stdout, format, report(inputPath, violations)); err != nil {
		return err
	}
	if !violations.IsEmpty() {
		return ErrViolations
	}
	return nil
}

// translator layers the catalogue at path over the built-in messages.
func (a *app) translator(ctx context.Context, path string) (*i18n.Translator, error) {
	parser := i18n.NewParserForFile(path)
	if parser == nil {
		return nil, ErrUnknownCatalogue
	}
	a.log.InfoContext(ctx, "loading messages", logger.Source(path))
	return i18n.NewTranslator(ctx,
		i18n.NewLayeredAdapter(i18n.BuiltinAdapter(), i18n.NewFileAdapter(parser, path)),
		i18n.WithLogger(a.log),
	)
}

type violationReport struct {
	Field   string         `json:"field"`
	Key     string         `json:"key"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

type checkReport struct {
	Input      string            `json:"input"`
	Valid      bool              `json:"valid"`
	Violations []violationReport `json:"violations"`
}

func report(input string, errs validator.ValidationErrors) checkReport {
	r := checkReport{
		Input:      input,
		Valid:      errs.IsEmpty(),
		Violations: make([]violationReport, 0, len(errs)),
	}
	for _, e := range errs {
		r.Violations = append(r.Violations, violationReport{
			Field:   e.Field,
			Key:     e.TranslationKey,
			Message: e.Message,
			Params:  e.TranslationValues,
		})
	}
	return r
}

func writeReport(w io.Writer, format outputFormat, r checkReport) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if r.Valid {
		_, err := fmt.Fprintf(w, "%s: ok\n", r.Input)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s: %d violation(s)\n", r.Input, len(r.Violations)); err != nil {
		return err
	}
	for _, v := range r.Violations {
		if _, err := fmt.Fprintf(w, "  %s [%s]\n", v.Message, v.Key); err != nil {
			return err
		}
	}
	return nil
}
