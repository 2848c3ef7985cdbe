package expander

import "testing"

// TestHasMeta tests metacharacter detection.
func TestHasMeta(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"*.txt", true},
		{"**/*.go", true},
		{"file?.txt", true},
		{"[abc].txt", true},
		{`esc\*.txt`, true},
		{"plain.txt", false},
		{"some/dir/file.txt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := hasMeta(tt.pattern); got != tt.want {
				t.Errorf("hasMeta(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestSplitPattern tests base/glob separation.
func TestSplitPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		wantBase string
		wantGlob string
	}{
		{"*.txt", ".", "*.txt"},
		{"src/**/*.go", "src", "**/*.go"},
		{"/tmp/*.log", "/tmp", "*.log"},
		{"a/b/*.txt", "a/b", "*.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			base, glob := splitPattern(tt.pattern)
			if base != tt.wantBase || glob != tt.wantGlob {
				t.Errorf("splitPattern(%q) = (%q, %q), want (%q, %q)",
					tt.pattern, base, glob, tt.wantBase, tt.wantGlob)
			}
		})
	}
}

// TestCanDescend tests subtree pruning decisions.
func TestCanDescend(t *testing.T) {
	tests := []struct {
		glob string
		rel  string
		want bool
	}{
		// Fixed-depth patterns: prefix must match, depth must remain
		{"*/c.txt", "a", true},
		{"a/c.txt", "a", true},
		{"a/c.txt", "b", false},
		{"*.txt", "sub", false},
		{"a/*/c.txt", "a", true},
		{"a/*/c.txt", "a/x", true},
		{"a/*/c.txt", "a/x/y", false},
		{"a/*/c.txt", "b", false},

		// Doublestar can match any depth: never prune past it
		{"**/*.txt", "any", true},
		{"**/*.txt", "any/depth/at/all", true},
		{"a/**", "a", true},
		{"a/**", "b", false},
		{"a/**/z.txt", "a/x/y", true},
	}

	for _, tt := range tests {
		t.Run(tt.glob+"_"+tt.rel, func(t *testing.T) {
			if got := canDescend(tt.glob, tt.rel); got != tt.want {
				t.Errorf("canDescend(%q, %q) = %v, want %v", tt.glob, tt.rel, got, tt.want)
			}
		})
	}
}
