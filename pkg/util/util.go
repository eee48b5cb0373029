// --- START OF FINAL REVISED FILE pkg/util/util.go ---
package util

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesExclude reports whether a slash-separated relative path matches a doublestar
// glob. Patterns without a '/' are also tried against the last path element, so
// "*.tmp.json" excludes the file at any depth.
func MatchesExclude(pattern, relPath string) bool {
	if pattern == "" || relPath == "" || relPath == "." {
		return false
	}
	if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if matched, err := doublestar.Match(pattern, path.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}

// ValidPattern reports whether pattern is a well-formed doublestar glob.
func ValidPattern(pattern string) bool {
	return pattern != "" && doublestar.ValidatePattern(pattern)
}

// Capitalize title-cases the first character of s and leaves the rest untouched.
// "" stays "".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := unicode.ToTitle(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// --- END OF FINAL REVISED FILE pkg/util/util.go ---
