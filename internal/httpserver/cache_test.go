package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCacheStoresUntilExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newPageCache(time.Minute)
	c.now = func() time.Time { return now }

	var builds int
	build := func() ([]byte, error) {
		builds++
		return []byte("page"), nil
	}

	first, hit, err := c.get("/a", build)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, computeETag([]byte("page")), first.etag)

	_, hit, err = c.get("/a", build)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, builds)

	now = now.Add(2 * time.Minute)
	_, hit, err = c.get("/a", build)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, builds)
}

func TestPageCacheDisabled(t *testing.T) {
	t.Parallel()

	c := newPageCache(0)
	for i := 0; i < 3; i++ {
		_, hit, err := c.get("/a", func() ([]byte, error) { return []byte("x"), nil })
		require.NoError(t, err)
		assert.False(t, hit)
	}
	assert.Zero(t, c.len())
}

func TestPageCacheDoesNotStoreErrors(t *testing.T) {
	t.Parallel()

	c := newPageCache(time.Minute)
	boom := errors.New("boom")
	_, _, err := c.get("/a", func() ([]byte, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	assert.Zero(t, c.len())
}

func TestPageCacheCollapsesConcurrentMisses(t *testing.T) {
	t.Parallel()

	c := newPageCache(time.Minute)
	var builds atomic.Int32
	release := make(chan struct{})
	build := func() ([]byte, error) {
		builds.Add(1)
		<-release
		return []byte("page"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page, _, err := c.get("/a", build)
			assert.NoError(t, err)
			assert.Equal(t, "page", string(page.body))
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), builds.Load())
}

func TestMatchesETag(t *testing.T) {
	t.Parallel()

	etag := computeETag([]byte("body"))
	cases := []struct {
		header string
		want   bool
	}{
		{"", false},
		{etag, true},
		{`W/"other", ` + etag, true},
		{"*", true},
		{`W/"other"`, false},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("If-None-Match", tc.header)
		assert.Equal(t, tc.want, matchesETag(r, etag), tc.header)
	}
}
