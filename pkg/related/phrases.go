package related

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ashfoss/ashgen/internal/utils"
)

// genericWords are stopwords, auxiliary verbs and marketing filler that carry
// no similarity signal. Phrases made mostly of these are dropped outright.
var genericWords = map[string]bool{
	// articles and prepositions
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "up": true, "about": true,
	"into": true, "through": true, "during": true, "before": true,
	"after": true, "above": true, "below": true, "between": true,
	"among": true, "your": true,
	// common verbs
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "must": true, "can": true,
	// pronouns and determiners
	"that": true, "which": true, "who": true, "when": true, "where": true,
	"why": true, "how": true, "all": true, "any": true, "both": true,
	"each": true, "few": true, "more": true, "most": true, "other": true,
	"some": true, "such": true, "only": true, "own": true, "same": true,
	// common adverbs and adjectives
	"so": true, "than": true, "too": true, "very": true, "just": true,
	"now": true, "also": true, "different": true, "small": true,
	"large": true, "new": true, "old": true, "good": true, "great": true,
	"first": true, "last": true, "long": true, "little": true,
	"right": true, "big": true, "high": true, "following": true,
	"local": true, "sure": true,
	// action words that never indicate a domain
	"using": true, "used": true, "use": true, "like": true, "way": true,
	"make": true, "get": true, "go": true, "know": true, "take": true,
	"see": true, "come": true, "think": true, "look": true, "want": true,
	"give": true, "without": true, "including": true, "provides": true,
	"allows": true, "supports": true,
	// advertisement words
	"best": true, "free": true, "powerful": true, "easy": true,
	"simple": true, "fast": true, "secure": true, "reliable": true,
	"open-source": true, "open source": true, "self-hosted": true,
	"self hosted": true, "community": true, "enterprise": true,
	"lightweight": true, "high-performance": true,
}

// leadingConnectorRes reject multi-word phrases that start with a connector,
// auxiliary verb, pronoun or discourse marker.
var leadingConnectorRes = []*regexp.Regexp{
	regexp.MustCompile(`^(with|and|for|the|a|an)\s`),
	regexp.MustCompile(`^(is|are|can|will|has|have)\s`),
	regexp.MustCompile(`^(you|your|it|its|this|that)\s`),
	regexp.MustCompile(`^(also|using|used|like|such)\s`),
}

// IsGenericWord reports whether a single word is too generic to carry
// similarity signal.
func IsGenericWord(word string) bool {
	return genericWords[word]
}

// ExtractPhrases returns the set of significant phrases (contiguous word
// n-grams, 1 to 4 words) found in a description. The input is normalized
// first, so the returned phrases are lowercase. An empty description yields
// an empty, non-nil set.
func ExtractPhrases(description string) map[string]bool {
	phrases := make(map[string]bool)
	text := Normalize(description)
	if text == "" {
		return phrases
	}
	words := strings.Split(text, " ")

	for length := 1; length <= 4; length++ {
		for i := 0; i+length <= len(words); i++ {
			phrase := strings.Join(words[i:i+length], " ")
			if length == 1 && IsGenericWord(phrase) {
				continue
			}
			if IsSignificantPhrase(phrase, length) {
				phrases[phrase] = true
			}
		}
	}
	return phrases
}

// IsSignificantPhrase decides whether a phrase of the given word count is
// worth comparing across descriptions.
//
// Single words must be longer than 3 characters, not purely numeric and not
// generic. Multi-word phrases are rejected when more than half their words
// are generic, when they start with a leading connector, or when every word
// is at most 2 characters (abbreviation noise).
func IsSignificantPhrase(phrase string, length int) bool {
	if length == 1 {
		return utf8.RuneCountInString(phrase) > 3 && !utils.IsOnlyNumbers(phrase) && !IsGenericWord(phrase)
	}

	words := strings.Split(phrase, " ")

	generic := 0
	for _, w := range words {
		if IsGenericWord(w) {
			generic++
		}
	}
	if generic*2 > len(words) {
		return false
	}

	for _, re := range leadingConnectorRes {
		if re.MatchString(phrase) {
			return false
		}
	}

	allShort := true
	for _, w := range words {
		if len(w) > 2 {
			allShort = false
			break
		}
	}
	return !allShort
}
