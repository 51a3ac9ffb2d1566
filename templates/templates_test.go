package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmbeddedPages(t *testing.T) {
	t.Parallel()

	set, err := Parse(FS())
	require.NoError(t, err)
	for _, page := range []string{"home", "topic", "notfound", "redirect"} {
		assert.True(t, set.Has(page), page)
	}
	assert.False(t, set.Has("base"))
}

func TestRenderUnknownPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := MustParse().Render(&buf, "missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown page "missing"`)
}

func TestRenderFailureWritesNothing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := MustParse().Render(&buf, "home", struct{}{})
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
