// Package slug derives URL-safe listing identifiers.
package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// Make builds the base slug for a listing from its year, make and model,
// e.g. (2020, "Toyota", "Corolla") -> "2020-toyota-corolla".
func Make(year int, makeName, modelName string) string {
	return Slugify(fmt.Sprintf("%d %s %s", year, makeName, modelName))
}

// Candidate returns the nth slug candidate for a base: the base itself for
// n=0, then "base-1", "base-2", ...
func Candidate(base string, n int) string {
	if n <= 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

// Slugify lower-cases the input and collapses every run of
// non-alphanumeric characters into a single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
