package landing

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/micmidia/landing/content"
	"github.com/micmidia/landing/views"
)

// Export writes a static build of the site to dir on fsys. The exported
// page has no backend, so its contact form is rendered as a mock.
func Export(ctx context.Context, fsys afero.Fs, dir string, cfg SiteConfig, opts ...Option) error {
	cfg.ContactEnabled = false
	a := New(cfg, opts...)

	if err := fsys.MkdirAll(filepath.Join(dir, "public"), 0o755); err != nil {
		return fmt.Errorf("landing: export: %w", err)
	}
	if err := fsys.MkdirAll(filepath.Join(dir, "portfolio"), 0o755); err != nil {
		return fmt.Errorf("landing: export: %w", err)
	}

	home := a.page(views.ContactForm{})
	home.AssetBase = ""
	var page bytes.Buffer
	if err := views.LandingPage(home).Render(ctx, &page); err != nil {
		return fmt.Errorf("landing: export: render page: %w", err)
	}
	css, err := EmbeddedAssets.ReadFile("embedded/site.css")
	if err != nil {
		return fmt.Errorf("landing: export: %w", err)
	}
	favicon, err := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	if err != nil {
		return fmt.Errorf("landing: export: %w", err)
	}
	sitemap, err := Sitemap(a.Config.URL, a.now())
	if err != nil {
		return fmt.Errorf("landing: export: sitemap: %w", err)
	}

	files := map[string][]byte{
		"index.html":      page.Bytes(),
		"public/site.css": css,
		"favicon.svg":     favicon,
		"robots.txt":      []byte(RobotsTxt(a.Config.URL)),
		"sitemap.xml":     sitemap,
	}
	for _, p := range content.Projects() {
		img, err := a.Thumbs.Get(p.Number)
		if err != nil {
			return fmt.Errorf("landing: export: thumbnail %d: %w", p.Number, err)
		}
		files[views.ThumbnailPath(p.Number)] = img
	}

	for name, data := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := afero.WriteFile(fsys, filepath.Join(dir, filepath.FromSlash(name)), data, 0o644); err != nil {
			return fmt.Errorf("landing: export: write %s: %w", name, err)
		}
	}
	a.logger.Info("exported site", "dir", dir, "files", len(files))
	return nil
}
