package related

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	compoundTokenRe = regexp.MustCompile(`\b\w+[-_]\w+\b`)
	digitRunRe      = regexp.MustCompile(`\b\d+\b`)
)

// buzzwords are kept as meaningful but down-weighted for being overused
// across self-hosted software descriptions.
var buzzwords = []string{
	"server",
	"web",
	"management",
	"platform",
	"system",
	"application",
	"lightweight",
	"high-performance",
	"modern",
}

// PhraseWeight scores a phrase purely on its surface characteristics; no
// corpus statistics are involved. The base weight grows with word count and
// is then adjusted multiplicatively: compound tokens and digit runs boost,
// buzzwords dampen, long average word length boosts slightly.
func PhraseWeight(phrase string) float64 {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return 0
	}

	var weight float64
	switch len(words) {
	case 1:
		weight = 2.0
	case 2:
		weight = 4.0
	case 3:
		weight = 6.0
	default:
		weight = 8.0
	}

	// compound technical terms ("word2vec-style", "single_sign_on")
	if compoundTokenRe.MatchString(phrase) {
		weight *= 1.3
	}

	// Capitalized words mark proper nouns and brands. Extraction hands
	// phrases over lowercased, so this only fires for callers that still
	// hold original-case text.
	for _, w := range words {
		if utf8.RuneCountInString(w) > 1 && unicode.IsUpper([]rune(w)[0]) {
			weight *= 1.2
			break
		}
	}

	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	if float64(total)/float64(len(words)) > 6 {
		weight *= 1.1
	}

	for _, buzz := range buzzwords {
		if strings.Contains(phrase, buzz) {
			weight *= 0.9
			break
		}
	}

	// version numbers, ports and the like
	if digitRunRe.MatchString(phrase) {
		weight *= 1.1
	}

	return weight
}
