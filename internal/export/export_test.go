package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teozhengyang/programming-helper/internal/catalog"
	"github.com/teozhengyang/programming-helper/internal/export"
	"github.com/teozhengyang/programming-helper/internal/testutil"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, path)
	return data
}

func TestRunWritesEveryPage(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	site := testutil.NewSite(t, nil, "https://codecompass.example")
	res, err := export.Run(context.Background(), export.Options{OutDir: out, Site: site, Concurrency: 3})
	require.NoError(t, err)

	reg := catalog.MustDefault()
	assert.Equal(t, len(reg.Topics()), res.Topics)
	assert.Equal(t, len(reg.Sections()), res.Redirects)
	// topics + redirects + home + 404 + sitemap + two assets
	assert.Equal(t, res.Topics+res.Redirects+1+1+1+2, res.Files)

	for _, tp := range reg.Topics() {
		doc := testutil.ParseHTML(t, readFile(t, filepath.Join(out, tp.SectionID, tp.SubsectionID, "index.html")))
		sub, ok := reg.FindSubsection(tp.SectionID, tp.SubsectionID)
		require.True(t, ok)
		assert.Equal(t, sub.Name, doc.Find(".topic-header h1").Text(), tp.Path())
	}

	stub := testutil.ParseHTML(t, readFile(t, filepath.Join(out, "leetcode", "index.html")))
	assert.Equal(t, "0; url=/leetcode/prefix-sum", stub.Find(`meta[http-equiv="refresh"]`).AttrOr("content", ""))

	home := testutil.ParseHTML(t, readFile(t, filepath.Join(out, "index.html")))
	assert.Equal(t, 6, home.Find(".section-card").Length())

	notFound := testutil.ParseHTML(t, readFile(t, filepath.Join(out, "404.html")))
	assert.Equal(t, "Page not found", notFound.Find(".status h2").Text())

	assert.Contains(t, string(readFile(t, filepath.Join(out, "sitemap.xml"))), "<loc>https://codecompass.example/devops/docker</loc>")
	assert.NotEmpty(t, readFile(t, filepath.Join(out, "assets", "site.css")))
	assert.NotEmpty(t, readFile(t, filepath.Join(out, "assets", "sidebar.js")))
}

func TestRunMatchesServedBytes(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	site := testutil.NewSite(t, nil, "")
	_, err := export.Run(context.Background(), export.Options{OutDir: out, Site: site})
	require.NoError(t, err)

	data, err := site.Topic(context.Background(), "leetcode", "prefix-sum")
	require.NoError(t, err)
	want, err := site.RenderBytes(data)
	require.NoError(t, err)
	assert.Equal(t, want, readFile(t, filepath.Join(out, "leetcode", "prefix-sum", "index.html")))
}

func TestRunEmptySectionStubPointsHome(t *testing.T) {
	t.Parallel()

	reg, err := catalog.Parse([]byte(`
sections:
  - id: leetcode
    name: LeetCode
`))
	require.NoError(t, err)
	out := t.TempDir()
	res, err := export.Run(context.Background(), export.Options{OutDir: out, Site: testutil.NewSite(t, reg, "")})
	require.NoError(t, err)
	assert.Zero(t, res.Topics)

	stub := testutil.ParseHTML(t, readFile(t, filepath.Join(out, "leetcode", "index.html")))
	assert.Equal(t, "0; url=/", stub.Find(`meta[http-equiv="refresh"]`).AttrOr("content", ""))
}

func TestRunValidatesOptions(t *testing.T) {
	t.Parallel()

	_, err := export.Run(context.Background(), export.Options{Site: testutil.NewSite(t, nil, "")})
	require.ErrorContains(t, err, "output directory is required")

	_, err = export.Run(context.Background(), export.Options{OutDir: t.TempDir()})
	require.ErrorContains(t, err, "site is required")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := export.Run(ctx, export.Options{OutDir: t.TempDir(), Site: testutil.NewSite(t, nil, "")})
	require.ErrorIs(t, err, context.Canceled)
}
