// Package validation provides input normalization and format rules.
package validation

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugRegex        = regexp.MustCompile(`^[a-z0-9-]{1,60}$`)
)

// Slugify derives a URL-safe slug from a display name: lowercased, runs of
// non-alphanumeric characters collapsed into single hyphens.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 60 {
		s = strings.Trim(s[:60], "-")
	}
	return s
}

// ValidSlug reports whether s is an acceptable stored slug.
func ValidSlug(s string) bool {
	return slugRegex.MatchString(s) &&
		!strings.HasPrefix(s, "-") && !strings.HasSuffix(s, "-")
}

// AvatarPath derives the storage path for an uploaded avatar from the
// original filename, keeping the extension.
func AvatarPath(filename string) string {
	ext := ""
	if i := strings.LastIndex(filename, "."); i > 0 {
		ext = strings.ToLower(filename[i:])
		filename = filename[:i]
	}
	base := Slugify(filename)
	if base == "" {
		base = "avatar"
	}
	return "user_" + base + ext
}
