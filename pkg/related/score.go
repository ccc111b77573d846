package related

import (
	"strings"

	"github.com/ashfoss/ashgen/pkg/catalog"
)

// maxSemanticScore caps the phrase-overlap contribution so descriptions
// sharing lots of boilerplate cannot dominate the total.
const maxSemanticScore = 25

// proprietaryMarker is the literal non-free license symbol used when no
// registry is loaded. Kept for bootstrap and test runs.
const proprietaryMarker = "⊘ Proprietary"

// Breakdown maps signal names to their point contribution for one pair.
// It is ephemeral, retained only for debug output.
type Breakdown map[string]int

// scorePair computes the aggregate similarity score between the target and
// one candidate. phrases may be nil when the semantic signal is disabled.
func (f *Finder) scorePair(target, app *catalog.Application, phrases map[string]map[string]bool) (int, Breakdown) {
	sc := f.opts.Scoring
	score := 0
	breakdown := Breakdown{}

	if sc.SemanticSimilarity.Enabled {
		s := semanticScore(phrases[target.ID], phrases[app.ID])
		score += s
		breakdown["semantic"] = s
	}

	if sc.Categories.Enabled {
		s := countShared(app.Categories, target.Categories) * sc.Categories.PointsPerMatch
		score += s
		breakdown["categories"] = s
	}

	if sc.Alternatives.Enabled {
		s := alternativeScore(target, app, sc.Alternatives.PointsPerMatch)
		score += s
		breakdown["alternatives"] = s
	}

	if sc.Forks.Enabled {
		s := forkScore(target, app, sc.Forks.SameParentScore)
		score += s
		breakdown["forks"] = s
	}

	if sc.Platforms.Enabled {
		s := countShared(app.Platforms, target.Platforms) * sc.Platforms.PointsPerMatch
		score += s
		breakdown["platforms"] = s
	}

	if sc.License.Enabled {
		if len(app.Licenses) > 0 && len(target.Licenses) > 0 &&
			f.IsNonFree(target) == f.IsNonFree(app) {
			score += sc.License.SameTypeScore
			breakdown["license"] = sc.License.SameTypeScore
		}
	}

	if sc.Popularity.Enabled {
		if hasStars(target) && hasStars(app) &&
			PopularityTier(*target.Stars) == PopularityTier(*app.Stars) {
			score += sc.Popularity.SameTierScore
			breakdown["popularity"] = sc.Popularity.SameTierScore
		}
	}

	if sc.Dependencies.Enabled {
		if app.Depends3rdParty == target.Depends3rdParty {
			score += sc.Dependencies.SameStatusScore
			breakdown["dependencies"] = sc.Dependencies.SameStatusScore
		}
	}

	return score, breakdown
}

// semanticScore sums the weights of phrases shared by both sets, truncated
// to an integer and capped at maxSemanticScore.
func semanticScore(target, app map[string]bool) int {
	if len(target) == 0 || len(app) == 0 {
		return 0
	}
	var sum float64
	for phrase := range target {
		if app[phrase] {
			sum += PhraseWeight(phrase)
		}
	}
	score := int(sum)
	if score > maxSemanticScore {
		return maxSemanticScore
	}
	return score
}

// alternativeScore awards points per proprietary product both entries claim
// to be an alternative to, compared case-insensitively.
func alternativeScore(target, app *catalog.Application, pointsPerMatch int) int {
	if len(target.AlternativeTo) == 0 || len(app.AlternativeTo) == 0 {
		return 0
	}
	targetAlts := make(map[string]bool, len(target.AlternativeTo))
	for _, alt := range target.AlternativeTo {
		targetAlts[strings.ToLower(strings.TrimSpace(alt))] = true
	}
	common := 0
	seen := make(map[string]bool, len(app.AlternativeTo))
	for _, alt := range app.AlternativeTo {
		key := strings.ToLower(strings.TrimSpace(alt))
		if targetAlts[key] && !seen[key] {
			seen[key] = true
			common++
		}
	}
	return common * pointsPerMatch
}

// forkScore awards a flat bonus when both entries are forks of the same
// parent project.
func forkScore(target, app *catalog.Application, sameParentScore int) int {
	if target.ForkOf == "" || app.ForkOf == "" {
		return 0
	}
	if strings.ToLower(strings.TrimSpace(target.ForkOf)) == strings.ToLower(strings.TrimSpace(app.ForkOf)) {
		return sameParentScore
	}
	return 0
}

// IsNonFree reports whether the application carries a non-free license.
// With a registry loaded, any of the app's identifiers mapping to an entry
// with Free == false makes it non-free; unknown identifiers count as free.
// Without a registry it falls back to the literal proprietary marker.
func (f *Finder) IsNonFree(app *catalog.Application) bool {
	if len(app.Licenses) == 0 {
		return false
	}
	if len(f.licenses) > 0 {
		for _, lic := range app.Licenses {
			if info, ok := f.licenses[lic]; ok && !info.Free {
				return true
			}
		}
		return false
	}
	for _, lic := range app.Licenses {
		if lic == proprietaryMarker {
			return true
		}
	}
	return false
}

// PopularityTier buckets a star count into one of five ordered bands.
// Boundaries are inclusive on the lower bound of each tier.
func PopularityTier(stars int) string {
	switch {
	case stars >= 10000:
		return "mega"
	case stars >= 5000:
		return "highly"
	case stars >= 1000:
		return "popular"
	case stars >= 100:
		return "moderate"
	default:
		return "emerging"
	}
}

// hasStars reports whether the popularity signal applies to this entry.
// A zero count is treated the same as a missing one.
func hasStars(app *catalog.Application) bool {
	return app.Stars != nil && *app.Stars > 0
}

// countShared counts the distinct elements present in both slices.
func countShared(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	common := 0
	for _, v := range b {
		if set[v] {
			delete(set, v)
			common++
		}
	}
	return common
}
