package main

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// validatePatterns checks every pattern up front: one malformed pattern
// aborts the whole run before any filesystem work starts.
func validatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if strings.ContainsAny(pattern, "{}") {
			return fmt.Errorf("pattern %q: brace expansion is not supported, pass separate patterns instead", pattern)
		}
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid glob pattern: %q", pattern)
		}
	}
	return nil
}
