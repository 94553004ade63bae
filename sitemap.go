package landing

import (
	"bytes"
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/micmidia/landing/content"
	"github.com/micmidia/landing/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XMLNSI  string       `xml:"xmlns:image,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string         `xml:"loc"`
	LastMod string         `xml:"lastmod,omitempty"`
	Images  []sitemapImage `xml:"image:image"`
}

type sitemapImage struct {
	Loc string `xml:"image:loc"`
}

// Sitemap encodes the sitemap for the site: the landing page with its
// portfolio images.
func Sitemap(siteURL string, now time.Time) ([]byte, error) {
	home := sitemapURL{
		Loc:     BuildURL(siteURL),
		LastMod: now.UTC().Format("2006-01-02"),
	}
	for _, p := range content.Projects() {
		home.Images = append(home.Images, sitemapImage{Loc: AssetURL(siteURL, views.ThumbnailPath(p.Number))})
	}
	sitemap := sitemapURLSet{
		XMLNS:  "http://www.sitemaps.org/schemas/sitemap/0.9",
		XMLNSI: "http://www.google.com/schemas/sitemap-image/1.1",
		URLs:   []sitemapURL{home},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(sitemap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *App) renderSitemap(c echo.Context) error {
	data, err := Sitemap(a.Config.URL, a.now())
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", data)
}
