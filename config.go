package landing

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/micmidia/landing/chart"
)

// DefaultHTMXSrc is where the page loads htmx from when the contact form is live.
const DefaultHTMXSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// SiteConfig holds all configuration for the landing site.
type SiteConfig struct {
	Name        string // Site name (default "MicMidia")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Meta description
	Lang        string // Content language (default "pt-PT")

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path for contact messages (default "data/contact.db")

	ContactEnabled bool          // Serve POST /contact/; false renders the form as a mock
	ContactLimit   int           // Accepted submissions per IP per window (default 5)
	ContactWindow  time.Duration // Limiter window (default 10min)
	HTMXSrc        string        // htmx script URL (default DefaultHTMXSrc)

	SessionSecret string // Required when ContactEnabled
	CookieSecure  bool   // Set true for HTTPS
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "MicMidia"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Design que encanta, conteúdo que converte e deploys automáticos via GitHub."
	}
	if c.Lang == "" {
		c.Lang = "pt-PT"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/contact.db"
	}
	if c.ContactLimit == 0 {
		c.ContactLimit = 5
	}
	if c.ContactWindow == 0 {
		c.ContactWindow = 10 * time.Minute
	}
	if c.HTMXSrc == "" {
		c.HTMXSrc = DefaultHTMXSrc
	}
}

// Validate reports configuration that cannot serve.
func (c SiteConfig) Validate() error {
	if c.ContactEnabled && c.SessionSecret == "" {
		return fmt.Errorf("landing: SESSION_SECRET is required when the contact form is enabled")
	}
	if c.ContactLimit < 0 {
		return fmt.Errorf("landing: contact limit must not be negative")
	}
	return nil
}

// LoadConfig reads the configuration from the environment. Files named in
// envFiles (default ".env") are loaded first when they exist; variables
// already set in the environment win.
func LoadConfig(envFiles ...string) (SiteConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("landing: load %s: %w", f, err)
		}
	}

	cfg := SiteConfig{
		Name:           os.Getenv("SITE_NAME"),
		URL:            os.Getenv("SITE_URL"),
		Description:    os.Getenv("SITE_DESCRIPTION"),
		Addr:           os.Getenv("ADDR"),
		DatabasePath:   os.Getenv("DATABASE_PATH"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		HTMXSrc:        os.Getenv("HTMX_SRC"),
		ContactEnabled: true,
	}

	var err error
	if cfg.CookieSecure, err = envBool("COOKIE_SECURE", false); err != nil {
		return SiteConfig{}, err
	}
	if cfg.ContactEnabled, err = envBool("CONTACT_ENABLED", true); err != nil {
		return SiteConfig{}, err
	}
	if v := os.Getenv("CONTACT_LIMIT"); v != "" {
		if cfg.ContactLimit, err = strconv.Atoi(v); err != nil {
			return SiteConfig{}, fmt.Errorf("landing: CONTACT_LIMIT: %w", err)
		}
	}
	if v := os.Getenv("CONTACT_WINDOW"); v != "" {
		if cfg.ContactWindow, err = time.ParseDuration(v); err != nil {
			return SiteConfig{}, fmt.Errorf("landing: CONTACT_WINDOW: %w", err)
		}
	}

	cfg.setDefaults()
	return cfg, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("landing: %s: %w", key, err)
	}
	return b, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithChart replaces the hero chart collaborator. A nil renderer renders
// the hero without a chart.
func WithChart(r chart.Renderer) Option {
	return func(a *App) {
		a.chart = r
	}
}

// WithClock sets the time source used for the copyright year, sitemap
// dates and message timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithLogger sets the logger used by the server and the contact pipeline.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}
