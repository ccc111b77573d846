// Package utils holds small file, string and TOML helpers shared across
// ashgen packages.
package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// IsOnlyNumbers checks if a string consists entirely of numeric digits.
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Slugify turns free text into a lowercase hyphen-separated key suitable
// for filenames and URLs.
func Slugify(s string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(slug, "-")
}

// FormatBytes renders a byte count for human-readable display.
func FormatBytes(count int64) string {
	size := float64(count)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", size)
}
