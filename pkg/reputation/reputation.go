// Package reputation scores a contributor from locally recorded signals so the
// result can be rendered on the reputation gauge.
package reputation

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/mchmarny/gauge/pkg/slabs"
	"github.com/mchmarny/reputer/pkg/score"
	"gopkg.in/yaml.v3"
)

// PresetName is the slab preset matching the [0, 1] reputation range.
const PresetName = "reputation"

// Signals is the file form of the reputation model inputs.
type Signals struct {
	Username          string `json:"username,omitempty" yaml:"username,omitempty"`
	AgeDays           int64  `json:"age_days" yaml:"ageDays"`
	Followers         int64  `json:"followers" yaml:"followers"`
	Following         int64  `json:"following" yaml:"following"`
	PublicRepos       int64  `json:"public_repos" yaml:"publicRepos"`
	PrivateRepos      int64  `json:"private_repos" yaml:"privateRepos"`
	StrongAuth        bool   `json:"strong_auth" yaml:"strongAuth"`
	Suspended         bool   `json:"suspended" yaml:"suspended"`
	OrgMember         bool   `json:"org_member" yaml:"orgMember"`
	Commits           int64  `json:"commits" yaml:"commits"`
	UnverifiedCommits int64  `json:"unverified_commits" yaml:"unverifiedCommits"`
	TotalCommits      int64  `json:"total_commits" yaml:"totalCommits"`
	TotalContributors int    `json:"total_contributors" yaml:"totalContributors"`
	LastCommitDays    int64  `json:"last_commit_days" yaml:"lastCommitDays"`
}

func (s Signals) model() score.Signals {
	return score.Signals{
		Suspended:         s.Suspended,
		StrongAuth:        s.StrongAuth,
		Commits:           s.Commits,
		UnverifiedCommits: s.UnverifiedCommits,
		TotalCommits:      s.TotalCommits,
		TotalContributors: s.TotalContributors,
		AgeDays:           s.AgeDays,
		OrgMember:         s.OrgMember,
		LastCommitDays:    s.LastCommitDays,
		Followers:         s.Followers,
		Following:         s.Following,
		PublicRepos:       s.PublicRepos,
		PrivateRepos:      s.PrivateRepos,
	}
}

// Result is a computed reputation with the slab it falls in.
type Result struct {
	Username   string                 `json:"username,omitempty" yaml:"username,omitempty"`
	Reputation float64                `json:"reputation" yaml:"reputation"`
	Assessment string                 `json:"assessment" yaml:"assessment"`
	Model      string                 `json:"model" yaml:"model"`
	Categories []score.CategoryWeight `json:"categories" yaml:"categories"`
	Signals    *Signals               `json:"signals,omitempty" yaml:"signals,omitempty"`
	Slabs      gauge.Slabs            `json:"-" yaml:"-"`
}

// LoadSignals reads signals from a yaml or json file.
func LoadSignals(path string) (*Signals, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading signals file %s: %w", path, err)
	}

	var s Signals
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, &s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &s)
	default:
		return nil, fmt.Errorf("%s: %w", path, slabs.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing signals file %s: %w", path, err)
	}
	return &s, nil
}

// Compute scores s and resolves its assessment on the reputation preset.
func Compute(s *Signals) (*Result, error) {
	if s == nil {
		return nil, errors.New("signals required")
	}

	set, err := slabs.Preset(PresetName)
	if err != nil {
		return nil, err
	}

	rep := score.Compute(s.model())
	slog.Debug("reputation computed", "username", s.Username, "reputation", rep)

	return &Result{
		Username:   s.Username,
		Reputation: rep,
		Assessment: gauge.NewLookup(set.Sorted()).Assessment(rep),
		Model:      score.ModelVersion,
		Categories: score.Categories(),
		Signals:    s,
		Slabs:      set,
	}, nil
}
