package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Simple", input: "golang", want: "golang"},
		{name: "Uppercase", input: "GoLang", want: "golang"},
		{name: "Spaces", input: "error handling", want: "error-handling"},
		{name: "Symbol Runs Collapse", input: "c++ / c#", want: "c-c"},
		{name: "Leading Trailing Trimmed", input: "  --tag--  ", want: "tag"},
		{name: "All Symbols", input: "!!!", want: ""},
		{name: "Long Name Truncated", input: strings.Repeat("a", 80), want: strings.Repeat("a", 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("go-generics"))
	assert.True(t, ValidSlug("a"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("-leading"))
	assert.False(t, ValidSlug("trailing-"))
	assert.False(t, ValidSlug("Upper"))
	assert.False(t, ValidSlug(strings.Repeat("a", 61)))
}

func TestAvatarPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Plain", input: "photo.png", want: "user_photo.png"},
		{name: "Mixed Case And Spaces", input: "My Photo.JPG", want: "user_my-photo.jpg"},
		{name: "No Extension", input: "selfie", want: "user_selfie"},
		{name: "Hidden File", input: ".gitignore", want: "user_gitignore"},
		{name: "Unusable Name", input: "???.png", want: "user_avatar.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvatarPath(tt.input))
		})
	}
}
