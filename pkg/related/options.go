package related

import "fmt"

// Options controls scoring, filtering and ranking. The zero value is not
// useful; start from DefaultOptions and override via config.
type Options struct {
	Scoring     ScoringOptions `toml:"scoring"`
	MinScore    int            `toml:"min_score"`
	MaxResults  int            `toml:"max_results"`
	Tiebreakers []string       `toml:"tiebreakers"`
	Debug       bool           `toml:"debug"`
}

// ScoringOptions toggles and weights the eight similarity signals.
type ScoringOptions struct {
	SemanticSimilarity ToggleOptions     `toml:"semantic_similarity"`
	Categories         MatchOptions      `toml:"categories"`
	Alternatives       MatchOptions      `toml:"alternatives"`
	Forks              ForkOptions       `toml:"forks"`
	Platforms          MatchOptions      `toml:"platforms"`
	License            LicenseOptions    `toml:"license"`
	Popularity         PopularityOptions `toml:"popularity"`
	Dependencies       DependencyOptions `toml:"dependencies"`
}

// ToggleOptions is a bare on/off switch for signals without a weight knob.
type ToggleOptions struct {
	Enabled bool `toml:"enabled"`
}

// MatchOptions weights signals that award points per shared element.
type MatchOptions struct {
	Enabled        bool `toml:"enabled"`
	PointsPerMatch int  `toml:"points_per_match"`
}

// ForkOptions weights the shared-parent fork bonus.
type ForkOptions struct {
	Enabled         bool `toml:"enabled"`
	SameParentScore int  `toml:"same_parent_score"`
}

// LicenseOptions weights the license-freedom parity bonus.
type LicenseOptions struct {
	Enabled       bool `toml:"enabled"`
	SameTypeScore int  `toml:"same_type_score"`
}

// PopularityOptions weights the popularity-tier parity bonus.
type PopularityOptions struct {
	Enabled       bool `toml:"enabled"`
	SameTierScore int  `toml:"same_tier_score"`
}

// DependencyOptions weights the third-party dependency parity bonus.
type DependencyOptions struct {
	Enabled         bool `toml:"enabled"`
	SameStatusScore int  `toml:"same_status_score"`
}

// DefaultOptions returns the hand-tuned defaults: every signal enabled,
// min_score 3, max_results 6, stars then name as tie-breakers.
func DefaultOptions() Options {
	return Options{
		Scoring: ScoringOptions{
			SemanticSimilarity: ToggleOptions{Enabled: true},
			Categories:         MatchOptions{Enabled: true, PointsPerMatch: 4},
			Alternatives:       MatchOptions{Enabled: true, PointsPerMatch: 6},
			Forks:              ForkOptions{Enabled: true, SameParentScore: 8},
			Platforms:          MatchOptions{Enabled: true, PointsPerMatch: 2},
			License:            LicenseOptions{Enabled: true, SameTypeScore: 2},
			Popularity:         PopularityOptions{Enabled: true, SameTierScore: 1},
			Dependencies:       DependencyOptions{Enabled: true, SameStatusScore: 1},
		},
		MinScore:    3,
		MaxResults:  6,
		Tiebreakers: []string{"stars", "name"},
		Debug:       false,
	}
}

// Validate rejects option values that would otherwise surface as silent
// mis-scoring mid-build. Unrecognized tiebreaker names are allowed and
// ignored at ranking time.
func (o Options) Validate() error {
	if o.MinScore < 0 {
		return fmt.Errorf("related: min_score must be >= 0, got %d", o.MinScore)
	}
	if o.MaxResults < 0 {
		return fmt.Errorf("related: max_results must be >= 0, got %d", o.MaxResults)
	}
	for name, pts := range map[string]int{
		"categories.points_per_match":    o.Scoring.Categories.PointsPerMatch,
		"alternatives.points_per_match":  o.Scoring.Alternatives.PointsPerMatch,
		"forks.same_parent_score":        o.Scoring.Forks.SameParentScore,
		"platforms.points_per_match":     o.Scoring.Platforms.PointsPerMatch,
		"license.same_type_score":        o.Scoring.License.SameTypeScore,
		"popularity.same_tier_score":     o.Scoring.Popularity.SameTierScore,
		"dependencies.same_status_score": o.Scoring.Dependencies.SameStatusScore,
	} {
		if pts < 0 {
			return fmt.Errorf("related: scoring.%s must be >= 0, got %d", name, pts)
		}
	}
	return nil
}
