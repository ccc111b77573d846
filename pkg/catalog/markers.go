package catalog

import (
	"regexp"
	"strings"
)

var (
	forkMarkerRe = regexp.MustCompile(`(?i)\(fork of ([^)]+)\)`)
	altMarkerRe  = regexp.MustCompile(`(?i)\(alternative to ([^)]+)\)`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// ParseMarkers extracts relational annotations from the description into
// ForkOf and AlternativeTo, then strips them so downstream phrase
// extraction only sees prose. Safe to call on already-clean descriptions.
func ParseMarkers(app *Application) {
	desc := app.Description

	if m := forkMarkerRe.FindStringSubmatch(desc); m != nil {
		app.ForkOf = strings.TrimSpace(m[1])
		desc = forkMarkerRe.ReplaceAllString(desc, "")
	}

	if m := altMarkerRe.FindStringSubmatch(desc); m != nil {
		app.AlternativeTo = splitNames(m[1])
		desc = altMarkerRe.ReplaceAllString(desc, "")
	}

	app.Description = strings.TrimSpace(multiSpaceRe.ReplaceAllString(desc, " "))
}

// splitNames splits a marker payload like "Trello, Asana and Jira" into
// individual product names.
func splitNames(s string) []string {
	s = strings.ReplaceAll(s, " and ", ",")
	s = strings.ReplaceAll(s, " or ", ",")
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}
