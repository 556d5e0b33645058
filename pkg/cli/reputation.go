package cli

import (
	"context"
	"fmt"

	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/mchmarny/gauge/pkg/reputation"
	"github.com/urfave/cli/v3"
)

const (
	signalsFlagName = "signals"
	chartFlagName   = "chart"
)

func reputationCmd() *cli.Command {
	return &cli.Command{
		Name:    "reputation",
		Aliases: []string{"rep"},
		Usage:   "Score contributor reputation from a signals file",
		Action:  cmdReputation,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     signalsFlagName,
				Usage:    "Signals file [yaml, json]",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  chartFlagName,
				Usage: "Render the score as a gauge instead of printing the result",
			},
		}, chartFlags()...),
	}
}

func cmdReputation(ctx context.Context, cmd *cli.Command) error {
	s, err := reputation.LoadSignals(cmd.String(signalsFlagName))
	if err != nil {
		return err
	}

	r, err := reputation.Compute(s)
	if err != nil {
		return fmt.Errorf("error computing reputation: %w", err)
	}

	if !cmd.Bool(chartFlagName) {
		return encode(cmd.Root().Writer, getConfig(ctx).Output, r)
	}

	set := r.Slabs
	if cmd.IsSet(slabsFlagName) || cmd.IsSet(presetFlagName) {
		if set, err = resolveSlabs(ctx, cmd); err != nil {
			return err
		}
	}

	o, err := chartOptionsFrom(ctx, cmd)
	if err != nil {
		return err
	}

	c := gauge.Render(o.Width, r.Reputation, set, o.Animate)
	return writeChart(ctx, cmd.Root().Writer, c, o)
}
