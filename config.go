package cmsblog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata" // site.timezone must load on hosts without zoneinfo

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// SiteConfig holds all configuration for a cmsblog site.
type SiteConfig struct {
	Name                   string   // Site title (default "Blog")
	URL                    string   // Canonical URL (default "http://localhost:3000")
	Description            string   // Site description for feeds and meta tags
	Author                 string   // Author name for the bio and JSON-LD
	Keywords               []string // SEO keywords for every page
	Timezone               string   // IANA zone dates are shown in (default "UTC")
	DescriptionPlaceholder string   // Listing text for posts without a description

	CMSEndpoint     string        // Required: GraphQL endpoint of the content API
	CMSToken        string        // Bearer token for published content
	CMSPreviewToken string        // Bearer token for draft content
	CMSOrderBy      string        // Server-side post order (default "createdAt_DESC")
	CMSTimeout      time.Duration // Content API timeout (default 10s)

	Addr          string // Listen address (default ":3000")
	SessionSecret string // Session encryption secret; enables preview mode with PreviewSecret
	CookieSecure  bool   // Set true for HTTPS
	PreviewSecret string // Shared secret for /preview

	HighlightStyle  string // chroma style for code blocks (default "monokai")
	DisableSanitize bool   // Embed converted HTML without the allow-list pass

	OutDir string // Static build output directory (default "public")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.DescriptionPlaceholder == "" {
		c.DescriptionPlaceholder = DefaultDescriptionPlaceholder
	}
	if c.CMSOrderBy == "" {
		c.CMSOrderBy = "createdAt_DESC"
	}
	if c.CMSTimeout == 0 {
		c.CMSTimeout = 10 * time.Second
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.OutDir == "" {
		c.OutDir = "public"
	}
}

// Check reports every configuration problem at once.
func (c SiteConfig) Check() error {
	var errs []error
	if strings.TrimSpace(c.CMSEndpoint) == "" {
		errs = append(errs, errors.New("cms endpoint is required"))
	} else if u, err := url.Parse(c.CMSEndpoint); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("cms endpoint %q is not a valid url", c.CMSEndpoint))
	}
	if u, err := url.Parse(c.URL); c.URL != "" && (err != nil || u.Scheme == "" || u.Host == "") {
		errs = append(errs, fmt.Errorf("site url %q is not a valid url", c.URL))
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("unknown timezone %q", c.Timezone))
		}
	}
	if c.PreviewSecret != "" && c.SessionSecret == "" {
		errs = append(errs, errors.New("session secret is required when preview secret is set"))
	}
	if c.CMSTimeout < 0 {
		errs = append(errs, errors.New("cms timeout must not be negative"))
	}
	return errors.Join(errs...)
}

// Location returns the configured time zone, falling back to UTC.
func (c SiteConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Metadata returns the site-wide values shown on every page.
func (c SiteConfig) Metadata() SiteMetadata {
	return SiteMetadata{
		Title:       c.Name,
		Author:      c.Author,
		Description: c.Description,
		URL:         c.URL,
	}
}

// PreviewEnabled reports whether draft preview is configured.
func (c SiteConfig) PreviewEnabled() bool {
	return c.PreviewSecret != "" && c.SessionSecret != ""
}

type options struct {
	logger       *zap.Logger
	source       ContentSource
	registry     *prometheus.Registry
	staticDir    string
	customRoutes []func(*App)
}

func buildOptions(opts []Option) options {
	o := options{staticDir: "static"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// Option configures additional Site and App behavior.
type Option func(*options)

// WithLogger sets the structured logger (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSource replaces the GraphQL client with another content source.
func WithSource(s ContentSource) Option {
	return func(o *options) {
		o.source = s
	}
}

// WithRegistry sets the Prometheus registry request metrics go to
// (default: a fresh registry per App).
func WithRegistry(r *prometheus.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(o *options) {
		o.customRoutes = append(o.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "static").
func WithStaticDir(dir string) Option {
	return func(o *options) {
		o.staticDir = dir
	}
}
