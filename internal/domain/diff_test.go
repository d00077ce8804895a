package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff(t *testing.T) {
	before := []byte("<body>\n<p>a</p>\n</body>\n")
	after := []byte("<body>\n<header></header>\n<p>a</p>\n</body>\n")

	diff, err := UnifiedDiff("site/index.html", before, after)
	require.NoError(t, err)

	assert.Contains(t, diff, "--- a/site/index.html")
	assert.Contains(t, diff, "+++ b/site/index.html")
	assert.Contains(t, diff, "+<header></header>\n")
	assert.NotContains(t, diff, "-<p>a</p>")
}

func TestUnifiedDiff_Identical(t *testing.T) {
	diff, err := UnifiedDiff("index.html", []byte("same\n"), []byte("same\n"))
	require.NoError(t, err)
	assert.Empty(t, diff)
}
