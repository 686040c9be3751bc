// Package cmsblog serves a personal blog whose posts live in a headless
// GraphQL CMS. It renders a listing page and one page per post, with
// Markdown bodies converted to HTML, plus RSS, sitemap and draft preview.
//
// Templates are supplied through ViewFuncs; package views provides the
// default set.
package cmsblog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eringen/cmsblog/markdown"
)

const shutdownTimeout = 10 * time.Second

// App is the HTTP front of a Site. It wires the middleware, routes and
// preview session around the page builders.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Site   *Site
	Logger *zap.Logger

	previewLimiter *AttemptLimiter
	registry       *prometheus.Registry
	staticDir      string
}

// New creates an App with its routes registered. The returned App is an
// http.Handler through its Echo instance and can be tested without Start.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) (*App, error) {
	o := buildOptions(opts)
	site, err := newSite(cfg, views, o)
	if err != nil {
		return nil, err
	}
	if err := markdown.Setup(site.Config.HighlightStyle); err != nil {
		return nil, fmt.Errorf("cmsblog: %w", err)
	}

	registry := o.registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:    site.Config,
		Echo:      e,
		Site:      site,
		Logger:    o.logger,
		registry:  registry,
		staticDir: o.staticDir,
	}
	if a.Config.PreviewEnabled() {
		a.previewLimiter = NewAttemptLimiter(5, time.Minute)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range o.customRoutes {
		fn(a)
	}
	return a, nil
}

// Start serves HTTP on Config.Addr until ctx is canceled, then shuts the
// server down gracefully.
func (a *App) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("cms", a.Config.CMSEndpoint))
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("cmsblog: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/highlight.css", handleHighlightCSS)
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", handleHealthz)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: a.registry,
	}))

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/:slug", a.handlePost)

	if a.Config.PreviewEnabled() {
		e.GET("/preview", a.handlePreview)
		e.GET("/preview/exit", a.handlePreviewExit)
	}
}

// Close releases background resources. Call it after Start returns.
func (a *App) Close() error {
	if a.previewLimiter != nil {
		a.previewLimiter.Stop()
	}
	_ = a.Logger.Sync()
	return nil
}
