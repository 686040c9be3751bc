package cmsblog

import (
	"context"
	"fmt"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/eringen/cmsblog/cms"
	"github.com/eringen/cmsblog/markdown"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = cms.ErrNotFound

// excerptLength bounds the meta description derived from a post body.
const excerptLength = 160

// ContentSource is where posts come from. *cms.Client implements it.
type ContentSource interface {
	ListPosts(ctx context.Context, stage cms.Stage) ([]cms.PostSummary, error)
	GetPost(ctx context.Context, stage cms.Stage, id string) (cms.PostDetail, error)
}

// ViewFuncs holds the templ components the site renders pages with.
// Package views provides the default set.
type ViewFuncs struct {
	Home        func(page Page, posts []ListingEntry) templ.Component
	Post        func(page Page, post PostView) templ.Component
	NotFound    func(page Page) templ.Component
	ServerError func(page Page) templ.Component
}

// Site turns content from the source into page components. It keeps no
// content between calls; every page is built from a fresh query.
type Site struct {
	Config   SiteConfig
	Source   ContentSource
	Markdown *markdown.Renderer
	Views    ViewFuncs

	loc    *time.Location
	logger *zap.Logger
}

// NewSite validates cfg and wires the content source and markdown renderer.
// Unless WithSource is given, a GraphQL client for cfg.CMSEndpoint is used.
func NewSite(cfg SiteConfig, views ViewFuncs, opts ...Option) (*Site, error) {
	o := buildOptions(opts)
	return newSite(cfg, views, o)
}

func newSite(cfg SiteConfig, views ViewFuncs, o options) (*Site, error) {
	cfg.setDefaults()
	source := o.source
	if source == nil {
		if err := cfg.Check(); err != nil {
			return nil, fmt.Errorf("cmsblog: invalid config: %w", err)
		}
		client, err := cms.New(cms.Config{
			Endpoint:     cfg.CMSEndpoint,
			Token:        cfg.CMSToken,
			PreviewToken: cfg.CMSPreviewToken,
			OrderBy:      cfg.CMSOrderBy,
			Timeout:      cfg.CMSTimeout,
			Logger:       o.logger.Named("cms"),
		})
		if err != nil {
			return nil, fmt.Errorf("cmsblog: init content source: %w", err)
		}
		source = client
	}
	return &Site{
		Config: cfg,
		Source: source,
		Markdown: markdown.New(markdown.Options{
			HighlightStyle:  cfg.HighlightStyle,
			DisableSanitize: cfg.DisableSanitize,
		}),
		Views:  views,
		loc:    cfg.Location(),
		logger: o.logger,
	}, nil
}

// Posts returns the post list for stage, in source order.
func (s *Site) Posts(ctx context.Context, stage cms.Stage) ([]cms.PostSummary, error) {
	posts, err := s.Source.ListPosts(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("cmsblog: list posts: %w", err)
	}
	return posts, nil
}

// HomePage builds the listing page from posts.
func (s *Site) HomePage(posts []cms.PostSummary, stage cms.Stage) templ.Component {
	entries := BuildListing(posts, s.loc, s.Config.DescriptionPlaceholder)
	for _, e := range entries {
		if ReservedSlug(e.Slug) {
			s.logger.Warn("post slug collides with a reserved path", zap.String("slug", e.Slug))
		}
		if e.DateErr != nil {
			s.logger.Warn("listing date fallback", zap.String("slug", e.Slug), zap.Error(e.DateErr))
		}
	}
	site := s.Config.Metadata()
	page := Page{
		Meta: PageMeta{
			Title:       "All posts",
			Description: site.Description,
			Keywords:    s.Config.Keywords,
			URL:         BuildURL(site.URL),
			OGType:      "website",
			JSONLD:      WebsiteJsonLD(site),
		},
		Site:    site,
		Preview: stage == cms.StageDraft,
	}
	return s.Views.Home(page, entries)
}

// PostPage fetches the post with slug from posts and builds its page.
// It returns ErrNotFound when slug is not in posts or the source has no body
// for it.
func (s *Site) PostPage(ctx context.Context, posts []cms.PostSummary, stage cms.Stage, slug string) (templ.Component, error) {
	summary, neighbors, ok := FindPost(posts, slug)
	if !ok {
		return nil, ErrNotFound
	}
	post, err := s.Source.GetPost(ctx, stage, summary.ID)
	if err != nil {
		return nil, fmt.Errorf("cmsblog: post %s: %w", slug, err)
	}

	view := BuildPostView(ctx, s.Markdown, post, neighbors, s.loc)
	if view.DateErr != nil {
		s.logger.Warn("post date fallback", zap.String("slug", slug), zap.Error(view.DateErr))
	}
	if view.BodyErr != nil {
		s.logger.Warn("post body unavailable", zap.String("slug", slug), zap.Error(view.BodyErr))
	}

	site := s.Config.Metadata()
	description := view.Description
	if description == "" {
		description = markdown.Excerpt(string(view.Body), excerptLength)
	}
	if description == "" {
		description = site.Description
	}
	ld := view
	ld.Description = description
	page := Page{
		Meta: PageMeta{
			Title:       view.Title,
			Description: description,
			Keywords:    s.Config.Keywords,
			URL:         BuildURL(site.URL, post.Slug),
			OGType:      "article",
			JSONLD:      BlogPostingJsonLD(site, ld, post.CreatedAt, s.Config.Keywords),
		},
		Site:    site,
		Preview: stage == cms.StageDraft,
	}
	return s.Views.Post(page, view), nil
}

// NotFoundPage renders the 404 page.
func (s *Site) NotFoundPage() templ.Component {
	return s.Views.NotFound(s.errorPage("Not found"))
}

// ServerErrorPage renders the 500 page.
func (s *Site) ServerErrorPage() templ.Component {
	return s.Views.ServerError(s.errorPage("Something went wrong"))
}

func (s *Site) errorPage(title string) Page {
	site := s.Config.Metadata()
	return Page{
		Meta: PageMeta{Title: title, OGType: "website"},
		Site: site,
	}
}
