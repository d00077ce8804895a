package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "aeronib.com/pkg/navhdr/internal/model"
)

func builtinVariant(t *testing.T, name string) m.Variant {
	t.Helper()

	nav, err := LoadNavigation()
	require.NoError(t, err)

	variant, err := nav.Variant(name)
	require.NoError(t, err)

	return variant
}

func TestRenderHeader_VariantA(t *testing.T) {
	variant := builtinVariant(t, "a")

	t.Run("parent base path", func(t *testing.T) {
		fragment, err := RenderHeader(m.ParentMarker, variant)
		require.NoError(t, err)

		want := `<header class="site-header">` +
			`<a class="logo" href="../"><img src="../logo.png" alt="Aeronib"/></a>` +
			`<nav class="menu">` +
			`<a href="../walkabout">Walkabout</a>` +
			`<a href="../travel">Travel</a>` +
			`<a href="../nature">Nature</a>` +
			`<a href="../fandom">Conventions &amp; Furry</a>` +
			`<a href="https://www.aeronib.com">My Other Work</a>` +
			`</nav></header>`
		assert.Equal(t, want, string(fragment))
	})

	t.Run("root base path", func(t *testing.T) {
		fragment, err := RenderHeader(m.RootBase, variant)
		require.NoError(t, err)

		assert.Contains(t, string(fragment), `<a class="logo" href=""><img src="logo.png"`)
		assert.Contains(t, string(fragment), `<a href="walkabout">Walkabout</a>`)
		assert.Contains(t, string(fragment), `<a href="fandom">Conventions &amp; Furry</a>`)
		assert.NotContains(t, string(fragment), "../")
	})

	t.Run("external link ignores base path", func(t *testing.T) {
		for _, base := range []m.BasePath{m.RootBase, m.ParentMarker} {
			header := BuildHeader(base, variant)
			hrefs := menuHrefs(header)
			require.Len(t, hrefs, 5)
			assert.Equal(t, "https://www.aeronib.com", hrefs[4])
		}
	})
}

func TestRenderHeader_VariantB(t *testing.T) {
	variant := builtinVariant(t, "b")

	fragment, err := RenderHeader(m.RootBase, variant)
	require.NoError(t, err)

	want := `<header class="site-header">` +
		`<img class="logo" src="logo.png" alt="Aeronib"/>` +
		`<nav class="menu">` +
		`<a href="">Home</a>` +
		`<a href="walkabout">Walkabout</a>` +
		`<a href="travel">Travel</a>` +
		`</nav></header>`
	assert.Equal(t, want, string(fragment))

	fragment, err = RenderHeader(m.ParentMarker, variant)
	require.NoError(t, err)
	assert.Contains(t, string(fragment), `<img class="logo" src="../logo.png" alt="Aeronib"/>`)
	assert.Contains(t, string(fragment), `<a href="../">Home</a>`)
	assert.Contains(t, string(fragment), `<a href="../travel">Travel</a>`)
}

func TestBuildHeader_ReturnsDetachedTree(t *testing.T) {
	header := BuildHeader(m.RootBase, builtinVariant(t, "a"))

	assert.Nil(t, header.Parent)
	assert.Nil(t, header.NextSibling)
	assert.Equal(t, "header", header.Data)
	assert.True(t, hasClass(header, HeaderClass))
}

func TestRenderHeader_EscapesCustomContent(t *testing.T) {
	variant := m.Variant{
		Name: "custom",
		Logo: m.Logo{Src: "img/logo.svg", Alt: `"quoted" <logo>`},
		Items: []m.MenuItem{
			{Label: "<b>Bold</b>", Target: "a?b=1&c=2"},
		},
	}

	fragment, err := RenderHeader(m.ParentMarker, variant)
	require.NoError(t, err)

	assert.Contains(t, string(fragment), `alt="&#34;quoted&#34; `)
	assert.Contains(t, string(fragment), `href="../a?b=1&amp;c=2"`)
	assert.Contains(t, string(fragment), `&lt;b&gt;Bold&lt;/b&gt;`)
	assert.False(t, strings.Contains(string(fragment), "<b>"))
}
