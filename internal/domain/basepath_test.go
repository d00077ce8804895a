package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "aeronib.com/pkg/navhdr/internal/model"
)

func TestResolveBasePath(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want m.BasePath
	}{
		{"parent relative", "../header.js", "../"},
		{"parent relative with query", "../header.js?v=3", "../"},
		{"only the marker", "../", "../"},
		{"nested parents keep a single marker", "../../header.js", "../"},
		{"root relative", "header.js", ""},
		{"current directory", "./header.js", ""},
		{"empty", "", ""},
		{"absolute path", "/header.js", ""},
		{"absolute url", "https://www.aeronib.com/header.js", ""},
		{"marker not at start", "js/../header.js", ""},
		{"dots without separator", "..header.js", ""},
		{"backslash separator", `..\header.js`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBasePath(tt.src)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestParseBasePath(t *testing.T) {
	base, err := ParseBasePath("../")
	require.NoError(t, err)
	assert.Equal(t, m.ParentMarker, base)

	base, err = ParseBasePath("")
	require.NoError(t, err)
	assert.Equal(t, m.RootBase, base)

	for _, invalid := range []string{"../../", "/", "./", "..", "sub/"} {
		_, err := ParseBasePath(invalid)
		assert.ErrorIs(t, err, ErrInvalidBase, invalid)
	}
}
