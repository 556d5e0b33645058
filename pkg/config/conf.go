// Package config persists the CLI defaults and user-defined slab sets.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/mchmarny/gauge/pkg/slabs"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600

	// DirName is the config directory under the user home.
	DirName = ".gauge"

	defaultWidth  = 400.0
	defaultFormat = "svg"
	defaultFPS    = 30
	defaultPreset = "percent"
)

var errDirRequired = errors.New("config directory required")

// Config represents app config object.
type Config struct {
	Width   float64                `yaml:"width"`
	Animate bool                   `yaml:"animate"`
	Format  string                 `yaml:"format"`
	FPS     int                    `yaml:"fps"`
	Preset  string                 `yaml:"preset"`
	Slabs   map[string]gauge.Slabs `yaml:"slabs,omitempty"`
}

// Default returns the config written on first run.
func Default() *Config {
	return &Config{
		Width:   defaultWidth,
		Animate: false,
		Format:  defaultFormat,
		FPS:     defaultFPS,
		Preset:  defaultPreset,
	}
}

// SlabSet resolves name against the user-defined sets first, then the
// built-in presets. An empty name resolves the configured default preset.
func (c *Config) SlabSet(name string) (gauge.Slabs, error) {
	if name == "" {
		name = c.Preset
	}
	if s, ok := c.Slabs[name]; ok {
		if err := slabs.Validate(s); err != nil {
			return nil, fmt.Errorf("config slab set %q: %w", name, err)
		}
		return s, nil
	}
	return slabs.Preset(name)
}

// SetNames lists the user-defined slab sets.
func (c *Config) SetNames() []string {
	list := make([]string, 0, len(c.Slabs))
	for k := range c.Slabs {
		list = append(list, k)
	}
	sort.Strings(list)
	return list
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	if c.FPS > gauge.MaxFPS {
		slog.Warn("config fps capped", "fps", c.FPS, "max", gauge.MaxFPS)
		c.FPS = gauge.MaxFPS
	}
	if c.Preset == "" {
		c.Preset = d.Preset
	}
}

func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errDirRequired
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// ReadOrCreate reads app config from directory or creates a new one.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errDirRequired
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dirPath, dirMode); err != nil {
			return nil, fmt.Errorf("failed to create dir %s: %w", dirPath, err)
		}
	}

	path := filepath.Join(dirPath, configFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating default config", "path", path)
		if err := Save(dirPath, Default()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file %s: %w", path, err)
	}
	c.fillDefaults()
	return &c, nil
}

// GetOrCreateHomeDir returns the home directory for the current user.
// The create flag is set to true if the directory was created.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("failed to get user home dir: %w", err)
	}
	slog.Debug("home dir", "path", home)

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", false, fmt.Errorf("failed to create dir %s: %w", dir, err)
		}
		created = true
	}
	return dir, created, nil
}
