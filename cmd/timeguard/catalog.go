package main

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

func (a *app) catalogCmd() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List every constraint with the field types it supports",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Only list constraints that support this field type",
			},
			formatFlag,
		},
		Action: a.catalog,
	}
}

type catalogEntry struct {
	Name   string   `json:"name"`
	Family string   `json:"family"`
	Types  []string `json:"types"`
}

func (a *app) catalog(_ context.Context, cmd *cli.Command) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	typeName := cmd.String("type")
	if typeName != "" {
		if _, ok := temporal.LookupName(typeName); !ok {
			return fmt.Errorf("%w: %q (known: %s)", ErrUnknownType, typeName, strings.Join(typeNames(), ", "))
		}
	}

	entries := make([]catalogEntry, 0)
	for _, d := range constraint.Definitions() {
		types := constraint.SupportedTypes(d)
		if typeName != "" && !slices.Contains(types, typeName) {
			continue
		}
		entries = append(entries, catalogEntry{Name: d.Name, Family: d.Family.String(), Types: types})
	}

	if format == formatJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFAMILY\tTYPES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Family, strings.Join(e.Types, ","))
	}
	return tw.Flush()
}

func typeNames() []string {
	adapters := temporal.Adapters()
	names := make([]string, 0, len(adapters))
	for _, ad := range adapters {
		names = append(names, ad.Name)
	}
	return names
}
