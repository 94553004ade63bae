// Package landing serves the MicMidia marketing landing page with Go, Echo
// and gomponents. It renders the page, accepts contact form submissions,
// generates the portfolio placeholder images and exports a static build.
package landing

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/micmidia/landing/chart"
	"github.com/micmidia/landing/contact"
)

// App is the central application. It wires together the contact store,
// thumbnail cache, handlers and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Store    *contact.Store
	Contact  *contact.Service
	Notifier *contact.Notifier
	Thumbs   *ThumbnailCache

	limiter      *contact.Limiter
	chart        chart.Renderer
	now          func() time.Time
	logger       *slog.Logger
	customRoutes []func(*App)
	staticDir    string
	cancel       context.CancelFunc
	ready        bool
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
		now:       time.Now,
		logger:    slog.Default(),
		chart:     chart.NewSVGArea(contentLanguage(cfg.Lang)),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.Thumbs = NewThumbnailCache(RenderThumbnail)
	return a
}

// Setup opens the contact store, starts the notifier and registers
// middleware and routes. Start calls it; tests call it directly and drive
// a.Echo with httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}

	if a.Config.ContactEnabled {
		if err := a.setupContact(); err != nil {
			a.Close()
			return err
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

func (a *App) setupContact() error {
	store, err := contact.NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("landing: init store: %w", err)
	}
	a.Store = store

	a.Notifier = contact.NewNotifier()
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if err := a.Notifier.Subscribe(ctx, contact.LogReceived(a.logger)); err != nil {
		return fmt.Errorf("landing: subscribe notifier: %w", err)
	}

	a.limiter = contact.NewLimiter(a.Config.ContactLimit, a.Config.ContactWindow)
	a.Contact = contact.NewService(store, a.Notifier, a.limiter,
		contact.WithClock(a.now),
		contact.WithLogger(a.logger),
	)
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.logger.Info("listening", "addr", a.Config.Addr, "contact", a.Config.ContactEnabled)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	return errors.Join(err, a.Close())
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets first, then the user's static dir.
	embedded, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.StripPrefix("/public/", http.FileServer(http.FS(embedded)))
	e.GET("/public/site.css", echo.WrapHandler(embeddedHandler))
	e.Static("/public", a.staticDir)

	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", a.handleHealth)
	e.GET("/portfolio/:file", a.handleThumbnail)
	e.GET("/", a.handleHome)

	if a.Config.ContactEnabled {
		e.POST("/contact/", a.handleContact)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.limiter != nil {
		a.limiter.Close()
	}
	var errs []error
	if a.Notifier != nil {
		errs = append(errs, a.Notifier.Close())
		a.Notifier = nil
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
		a.Store = nil
	}
	return errors.Join(errs...)
}

func contentLanguage(tag string) language.Tag {
	t, err := language.Parse(tag)
	if err != nil {
		return language.EuropeanPortuguese
	}
	return t
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
