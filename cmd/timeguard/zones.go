package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/timeguard/pkg/logger"
	"github.com/dmitrymomot/timeguard/pkg/temporal"
	"github.com/dmitrymomot/timeguard/pkg/zone"
)

func (a *app) zonesCmd() *cli.Command {
	return &cli.Command{
		Name:  "zones",
		Usage: "Report whether a zone-id policy is accepted by a field type",
		Description: `The policy is "system", "provided" or a zone id such as "Europe/Berlin".
The command exits with status 2 when the type rejects the policy.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "zone",
				Aliases:  []string{"z"},
				Required: true,
				Usage:    "Zone-id policy to check",
			},
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Required: true,
				Usage:    "Field type, e.g. datetime, timestamp or date",
			},
		},
		Action: a.zones,
	}
}

func (a *app) zones(ctx context.Context, cmd *cli.Command) error {
	p, err := zone.Parse(cmd.String("zone"))
	if err != nil {
		return err
	}
	typeName := cmd.String("type")
	ad, ok := temporal.LookupName(typeName)
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownType, typeName, strings.Join(typeNames(), ", "))
	}

	if err := p.Check(ad.Zones); err != nil {
		a.log.DebugContext(ctx, "policy rejected", logger.Zone(p.String()), logger.TargetType(ad.Name), logger.Error(err))
		fmt.Fprintf(a.stdout, "rejected: %s does not accept zone %s (accepts %s)\n", ad.Name, p, ad.Zones)
		return ErrRejected
	}
	fmt.Fprintf(a.stdout, "accepted: %s accepts zone %s (accepts %s)\n", ad.Name, p, ad.Zones)
	return nil
}
