// Package render holds presentation helpers shared by listing responses.
package render

import "strings"

// NoFeaturesMessage is shown when a listing has no usable feature tokens.
const NoFeaturesMessage = "No specific features listed for this vehicle."

// FeatureList splits a comma-separated features string into trimmed,
// non-empty display tokens.
func FeatureList(features string) []string {
	parts := strings.Split(features, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// FeaturesDisplay returns the placeholder message when no tokens exist,
// otherwise the empty string (callers render the token list instead).
func FeaturesDisplay(features string) string {
	if len(FeatureList(features)) == 0 {
		return NoFeaturesMessage
	}
	return ""
}
