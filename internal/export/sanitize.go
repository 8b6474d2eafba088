package export

import (
	"regexp"
	"strings"
)

var (
	unsafeRunes = regexp.MustCompile(`[^\w\s-]`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// FallbackName is used when sanitizing leaves nothing of an artist's name.
const FallbackName = "unknown"

// SanitizeFilename turns an artist name into a safe archive entry name:
// everything but word characters, spaces, and hyphens is removed, then
// whitespace runs collapse to single underscores.
func SanitizeFilename(name string) string {
	safe := unsafeRunes.ReplaceAllString(name, "")
	safe = spaceRuns.ReplaceAllString(strings.TrimSpace(safe), "_")
	if safe == "" {
		return FallbackName
	}
	return safe
}
