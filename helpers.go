package landing

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/micmidia/landing/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// AssetURL joins a base URL with a file path, without a trailing slash.
func AssetURL(base, file string) string {
	return strings.TrimSuffix(BuildURL(base), "/") + "/" + strings.TrimPrefix(file, "/")
}

// RobotsTxt returns a robots.txt that allows everything and points at the sitemap.
func RobotsTxt(siteURL string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", AssetURL(siteURL, "sitemap.xml"))
}

// OrganizationJsonLD returns a JSON-LD string for an Organization schema
// with the contact details shown on the page.
func OrganizationJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
		"address": map[string]string{
			"@type":           "PostalAddress",
			"addressLocality": "Luanda",
			"addressCountry":  "AO",
		},
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	point := map[string]string{
		"@type":       "ContactPoint",
		"contactType": "customer service",
	}
	for _, c := range content.ContactCards() {
		switch c.Label {
		case "Telefone":
			point["telephone"] = c.Value
		case "Email":
			point["email"] = c.Value
		}
	}
	data["contactPoint"] = point

	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
