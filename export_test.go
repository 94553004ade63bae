package landing

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := SiteConfig{URL: "https://micmidia.com", ContactEnabled: true}
	err := Export(context.Background(), fsys, "dist", cfg,
		WithClock(func() time.Time { return time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC) }))
	require.NoError(t, err)

	for _, name := range []string{
		"dist/index.html", "dist/public/site.css", "dist/favicon.svg", "dist/robots.txt", "dist/sitemap.xml",
		"dist/portfolio/1.png", "dist/portfolio/6.png",
	} {
		ok, err := afero.Exists(fsys, name)
		require.NoError(t, err)
		assert.True(t, ok, "missing %s", name)
	}
	ok, _ := afero.Exists(fsys, "dist/portfolio/7.png")
	assert.False(t, ok)

	index, err := afero.ReadFile(fsys, "dist/index.html")
	require.NoError(t, err)
	page := string(index)
	assert.NotContains(t, page, "action=")
	assert.NotContains(t, page, "hx-post")
	assert.NotContains(t, page, "_csrf")
	assert.NotContains(t, page, "htmx")
	assert.Contains(t, page, `href="public/site.css"`)
	assert.Contains(t, page, `src="portfolio/3.png"`)
	assert.Contains(t, page, "© 2027 MicMidia.")

	img, err := afero.ReadFile(fsys, "dist/portfolio/2.png")
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, 640, decoded.Bounds().Dx())

	robots, err := afero.ReadFile(fsys, "dist/robots.txt")
	require.NoError(t, err)
	assert.Contains(t, string(robots), "https://micmidia.com/sitemap.xml")
}

func TestExportHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Export(ctx, afero.NewMemMapFs(), "dist", SiteConfig{})
	assert.ErrorIs(t, err, context.Canceled)
}
