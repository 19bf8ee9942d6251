package normalize

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"already slug", "hello-world", "hello-world"},
		{"uppercase", "HELLO", "hello"},
		{"punctuation runs", "Mac & Cheese!!", "mac-cheese"},
		{"leading and trailing", "  Spiced Rice  ", "spiced-rice"},
		{"digits", "3-Ingredient Smoothie", "3-ingredient-smoothie"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
		{"unicode stripped", "Crème Brûlée", "cr-me-br-l-e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyShape(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	titles := []string{
		"Hello World",
		"A  --  B",
		"-leading",
		"trailing-",
		"MiXeD CaSe 42",
		"comma, separated, list",
	}

	for _, title := range titles {
		slug := Slugify(title)
		if slug == "" {
			continue
		}
		assert.True(t, valid.MatchString(slug), "slug %q from title %q", slug, title)
		assert.False(t, strings.Contains(slug, "--"), "slug %q has consecutive hyphens", slug)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{"Hello World", "Mac & Cheese", "3-Ingredient Smoothie", "already-a-slug"}

	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once))
	}
}
