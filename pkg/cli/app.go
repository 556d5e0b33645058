package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mchmarny/gauge/pkg/config"
	"github.com/mchmarny/gauge/pkg/logging"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"

	debugFlagName  = "debug"
	configFlagName = "config"
	outputFlagName = "output"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// Execute creates and runs the CLI application.
func Execute() {
	initLogging(false)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		stop()
		os.Exit(1)
	}
}

type appConfig struct {
	Dir    string
	Debug  bool
	Output string
	Config *config.Config
}

type appConfigKey struct{}

func getConfig(ctx context.Context) *appConfig {
	if cfg, ok := ctx.Value(appConfigKey{}).(*appConfig); ok {
		return cfg
	}
	return &appConfig{
		Output: formatJSON,
		Config: config.Default(),
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "gauge",
		Version:               fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:                 "Render scores as semicircular slab gauges",
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlagName,
				Usage:   "Prints verbose logs (optional, default: false)",
				Sources: cli.EnvVars("GAUGE_DEBUG"),
			},
			&cli.StringFlag{
				Name:    configFlagName,
				Usage:   "Config directory (default: ~/" + config.DirName + ")",
				Sources: cli.EnvVars("GAUGE_CONFIG"),
			},
			&cli.StringFlag{
				Name:  outputFlagName,
				Usage: "Structured output format [json, yaml]",
				Value: formatJSON,
			},
		},
		Commands: []*cli.Command{
			renderCmd(),
			reputationCmd(),
			slabsCmd(),
			previewCmd(),
		},
		Before: before,
	}
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	debug := cmd.Bool(debugFlagName)
	if debug {
		initLogging(true)
	}

	dir := cmd.String(configFlagName)
	if dir == "" {
		d, created, err := config.GetOrCreateHomeDir(config.DirName)
		if err != nil {
			return ctx, fmt.Errorf("resolving config dir: %w", err)
		}
		slog.Debug("config dir", "path", d, "created", created)
		dir = d
	}

	c, err := config.ReadOrCreate(dir)
	if err != nil {
		return ctx, fmt.Errorf("loading config: %w", err)
	}

	output := formatJSON
	if f := cmd.String(outputFlagName); f == formatYAML || f == "yml" {
		output = formatYAML
	}

	return context.WithValue(ctx, appConfigKey{}, &appConfig{
		Dir:    dir,
		Debug:  debug,
		Output: output,
		Config: c,
	}), nil
}

func initLogging(debug bool) {
	level := "info"
	if debug {
		level = "debug"
	}
	logging.SetDefaultCLILogger(level)
}

func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		return yaml.NewEncoder(w).Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
