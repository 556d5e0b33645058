// Package slabs loads slab sets from files and provides the built-in presets.
package slabs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mchmarny/gauge/pkg/colors"
	"github.com/mchmarny/gauge/pkg/gauge"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

var (
	// ErrUnsupportedFormat is returned for files that are not yaml, json or toml.
	ErrUnsupportedFormat = errors.New("unsupported slab file format")

	// ErrUnknownPreset is returned when no preset has the requested name.
	ErrUnknownPreset = errors.New("unknown preset")
)

// file is the document form of a slab set: either a bare list or an object
// with a slabs key.
type file struct {
	Name  string      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Slabs gauge.Slabs `json:"slabs" yaml:"slabs" toml:"slabs"`
}

// FormatOf returns the format implied by the file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads and validates the slab set in path.
func Load(path string) (gauge.Slabs, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading slab file %s: %w", path, err)
	}

	s, err := Parse(b, format)
	if err != nil {
		return nil, fmt.Errorf("error parsing slab file %s: %w", path, err)
	}

	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("invalid slab file %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a slab set in the given format.
func Parse(b []byte, format string) (gauge.Slabs, error) {
	var f file
	switch format {
	case FormatYAML:
		var list gauge.Slabs
		if err := yaml.Unmarshal(b, &list); err == nil {
			return list, nil
		}
		if err := yaml.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("error decoding yaml: %w", err)
		}
	case FormatJSON:
		trimmed := bytes.TrimSpace(b)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var list gauge.Slabs
			if err := json.Unmarshal(trimmed, &list); err != nil {
				return nil, fmt.Errorf("error decoding json: %w", err)
			}
			return list, nil
		}
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return nil, fmt.Errorf("error decoding json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(b), &f); err != nil {
			return nil, fmt.Errorf("error decoding toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	return f.Slabs, nil
}

// Validate checks the tiling of the set and that every color parses.
func Validate(s gauge.Slabs) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for i, v := range s {
		if _, err := colors.Parse(v.Color); err != nil {
			return fmt.Errorf("slab %d (%s): %w", i, v.Assessment, err)
		}
	}
	return nil
}

// Encode writes s in the given format.
func Encode(s gauge.Slabs, format string) ([]byte, error) {
	f := file{Slabs: s}
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatJSON:
		return json.MarshalIndent(f, "", "  ")
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, fmt.Errorf("error encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

var presets = map[string]gauge.Slabs{
	"percent": {
		{Min: 0, Max: 20, Color: "#c0392b", Assessment: "Very Poor"},
		{Min: 20, Max: 40, Color: "#e74c3c", Assessment: "Poor"},
		{Min: 40, Max: 60, Color: "#e67e22", Assessment: "Fair"},
		{Min: 60, Max: 80, Color: "#f1c40f", Assessment: "Good"},
		{Min: 80, Max: 100, Color: "#2ecc71", Assessment: "Excellent"},
	},
	"credit": {
		{Min: 300, Max: 580, Color: "#e74c3c", Assessment: "Poor"},
		{Min: 580, Max: 670, Color: "#e67e22", Assessment: "Fair"},
		{Min: 670, Max: 740, Color: "#f1c40f", Assessment: "Good"},
		{Min: 740, Max: 800, Color: "#27ae60", Assessment: "Very Good"},
		{Min: 800, Max: 850, Color: "#2ecc71", Assessment: "Exceptional"},
	},
	"reputation": {
		{Min: 0, Max: 0.25, Color: "#e74c3c", Assessment: "Low"},
		{Min: 0.25, Max: 0.5, Color: "#e67e22", Assessment: "Moderate"},
		{Min: 0.5, Max: 0.75, Color: "#f1c40f", Assessment: "Good"},
		{Min: 0.75, Max: 1, Color: "#2ecc71", Assessment: "High"},
	},
}

// Preset returns a copy of the named built-in slab set.
func Preset(name string) (gauge.Slabs, error) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q (have: %s): %w", name, strings.Join(Presets(), ", "), ErrUnknownPreset)
	}
	out := make(gauge.Slabs, len(s))
	copy(out, s)
	return out, nil
}

// Presets lists the names of the built-in slab sets.
func Presets() []string {
	list := make([]string, 0, len(presets))
	for k := range presets {
		list = append(list, k)
	}
	sort.Strings(list)
	return list
}
