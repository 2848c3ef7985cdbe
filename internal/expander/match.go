package expander

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// hasMeta reports whether the pattern contains glob metacharacters.
// Braces are rejected during CLI validation and never reach the expander.
func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[\`)
}

// splitPattern splits a pattern into a meta-free base directory and the
// glob remainder to match beneath it.
func splitPattern(pattern string) (base, glob string) {
	base, glob = doublestar.SplitPattern(pattern)
	if base == "" {
		base = "."
	}
	return base, glob
}

// canDescend reports whether entries below the directory rel can still
// match glob, allowing the walk to prune dead subtrees.
//
// A doublestar segment can match any number of path segments, so pruning is
// only safe up to the first "**". For fixed-depth prefixes the directory's
// own path must match the pattern prefix of the same depth.
func canDescend(glob, rel string) bool {
	segs := strings.Split(glob, "/")
	depth := strings.Count(rel, "/") + 1

	for i := 0; i < depth && i < len(segs); i++ {
		if strings.Contains(segs[i], "**") {
			return true
		}
	}
	if depth >= len(segs) {
		// Pattern has no segments left to match below this directory.
		return false
	}
	return doublestar.MatchUnvalidated(strings.Join(segs[:depth], "/"), rel)
}
