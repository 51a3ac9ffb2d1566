package public

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssets(t *testing.T) {
	t.Parallel()

	assets, err := Assets()
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "sidebar.js", assets[0].Name)
	assert.Equal(t, "text/javascript; charset=utf-8", assets[0].ContentType)
	assert.Equal(t, "site.css", assets[1].Name)
	assert.Equal(t, "text/css; charset=utf-8", assets[1].ContentType)
	for _, a := range assets {
		assert.True(t, strings.HasPrefix(a.ETag, `W/"`), a.Name)
		assert.NotEmpty(t, a.Data)
	}
}
