/*
Package related implements the related-applications similarity engine.

Given a target application and the full catalog, the Finder scores every
other entry on eight weighted signals (shared description phrases, shared
categories, alternative-to and fork relations, shared platforms, license
freedom parity, popularity tier parity and third-party dependency parity),
filters by a minimum score and returns a ranked, truncated list.

Phrase extraction is the expensive part, so per-application phrase sets are
memoized per Corpus; see Finder.
*/
package related

import (
	"regexp"
	"strings"
)

var (
	punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces punctuation with spaces while keeping
// hyphenated compounds and accented letters intact, and collapses whitespace
// runs. It is total: empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = punctuationRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
