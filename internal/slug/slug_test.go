package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kitchen_cali/internal/slug"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Los Angeles", "los-angeles"},
		{"Laurel & Fork", "laurel-fork"},
		{"Rosewood Feast Co.", "rosewood-feast-co"},
		{"  Newport   Beach ", "newport-beach"},
		{"villa-rosa-catering", "villa-rosa-catering"},
		{"--Salt & Fig--", "salt-fig"},
		{"Tab\tand\nnewline", "tab-and-newline"},
		{"Café Olé", "caf-ol"},
		{"Santa\vAna", "santa-ana"},
		{"Santa\u00a0Ana", "santa-ana"},
		{"Santa\u2003Ana", "santa-ana"},
		{"Santa \u3000\u0085 Ana", "santa-ana"},
		{"", ""},
		{"&&&", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slug.Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Los Angeles", "Laurel & Fork", "  a -- b  ", "ÀÉÎ õ ü", "x_y.z", "-", "A1 B2 C3", "İstanbul",
	}
	for _, in := range inputs {
		once := slug.Slugify(in)
		assert.Equal(t, once, slug.Slugify(once), "not idempotent for %q", in)
	}
}

func TestResolve(t *testing.T) {
	candidates := []string{"Orange", "Los Angeles", "los angeles", "San Diego"}

	got, ok := slug.Resolve("los-angeles", candidates)
	assert.True(t, ok)
	assert.Equal(t, "Los Angeles", got, "first candidate in order wins")

	_, ok = slug.Resolve("ventura", candidates)
	assert.False(t, ok)

	_, ok = slug.Resolve("", candidates)
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Big Bear Lake", slug.Label("big-bear-lake"))
	assert.Equal(t, "Burbank", slug.Label("burbank"))
	assert.Equal(t, "", slug.Label(""))
	assert.Equal(t, "A  B", slug.Label("a--b"))
}

func TestResolveOrLabel(t *testing.T) {
	candidates := []string{"La Jolla"}
	assert.Equal(t, "La Jolla", slug.ResolveOrLabel("la-jolla", candidates))
	assert.Equal(t, "Chula Vista", slug.ResolveOrLabel("chula-vista", candidates))
}
