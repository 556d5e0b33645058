package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/mchmarny/gauge/pkg/slabs"
	"github.com/urfave/cli/v3"
)

// SlabSetInfo describes one named slab set.
type SlabSetInfo struct {
	Name   string  `json:"name" yaml:"name"`
	Source string  `json:"source" yaml:"source"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Slabs  int     `json:"slabs" yaml:"slabs"`
}

// ValidationResult is printed by slabs validate.
type ValidationResult struct {
	Path  string  `json:"path" yaml:"path"`
	Valid bool    `json:"valid" yaml:"valid"`
	Min   float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max   float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Slabs int     `json:"slabs" yaml:"slabs"`
	Error string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func slabsCmd() *cli.Command {
	return &cli.Command{
		Name:  "slabs",
		Usage: "List, show and validate slab sets",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List built-in presets and config slab sets",
				Action: cmdSlabsList,
			},
			{
				Name:  "show",
				Usage: "Print a slab set",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  presetFlagName,
						Usage: "Built-in preset or config slab set name",
					},
					&cli.StringFlag{
						Name:  slabsFlagName,
						Usage: "Slab file [yaml, json, toml]",
					},
				},
				Action: cmdSlabsShow,
			},
			{
				Name:      "validate",
				Usage:     "Validate slab files",
				ArgsUsage: "<file>...",
				Action:    cmdSlabsValidate,
			},
		},
	}
}

func setInfo(name, source string, s gauge.Slabs) SlabSetInfo {
	lo, hi := s.Domain()
	return SlabSetInfo{Name: name, Source: source, Min: lo, Max: hi, Slabs: len(s)}
}

func cmdSlabsList(ctx context.Context, cmd *cli.Command) error {
	cfg := getConfig(ctx)

	list := make([]SlabSetInfo, 0)
	for _, n := range slabs.Presets() {
		s, err := slabs.Preset(n)
		if err != nil {
			return err
		}
		list = append(list, setInfo(n, "preset", s))
	}
	for _, n := range cfg.Config.SetNames() {
		list = append(list, setInfo(n, "config", cfg.Config.Slabs[n]))
	}

	return encode(cmd.Root().Writer, cfg.Output, list)
}

func cmdSlabsShow(ctx context.Context, cmd *cli.Command) error {
	s, err := resolveSlabs(ctx, cmd)
	if err != nil {
		return err
	}
	return encode(cmd.Root().Writer, getConfig(ctx).Output, s.Sorted())
}

func cmdSlabsValidate(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("at least one slab file required")
	}

	results := make([]ValidationResult, 0, len(paths))
	invalid := 0
	for _, p := range paths {
		r := ValidationResult{Path: p}
		s, err := slabs.Load(p)
		if err != nil {
			slog.Debug("invalid slab file", "path", p, "error", err)
			r.Error = err.Error()
			invalid++
		} else {
			r.Valid = true
			r.Min, r.Max = s.Domain()
			r.Slabs = len(s)
		}
		results = append(results, r)
	}

	if err := encode(cmd.Root().Writer, getConfig(ctx).Output, results); err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d slab files invalid", invalid, len(paths))
	}
	return nil
}
