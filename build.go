package cmsblog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/eringen/cmsblog/cms"
	"github.com/eringen/cmsblog/markdown"
)

// Builder renders the whole site to static files.
type Builder struct {
	Site   *Site
	OutDir string

	logger *zap.Logger
}

// BuildResult summarises a finished build.
type BuildResult struct {
	Posts int
	Files []string // relative to OutDir
}

// NewBuilder creates a Builder writing into cfg.OutDir.
func NewBuilder(cfg SiteConfig, views ViewFuncs, opts ...Option) (*Builder, error) {
	o := buildOptions(opts)
	site, err := newSite(cfg, views, o)
	if err != nil {
		return nil, err
	}
	if err := markdown.Setup(site.Config.HighlightStyle); err != nil {
		return nil, fmt.Errorf("cmsblog: %w", err)
	}
	return &Builder{Site: site, OutDir: site.Config.OutDir, logger: o.logger}, nil
}

// Build queries the published posts once and writes the listing, one page
// per post and the site files. The first error aborts the build.
func (b *Builder) Build(ctx context.Context) (BuildResult, error) {
	var res BuildResult
	posts, err := b.Site.Posts(ctx, cms.StagePublished)
	if err != nil {
		return res, err
	}

	write := func(name string, fn func(io.Writer) error) error {
		if err := b.writeFile(name, fn); err != nil {
			return fmt.Errorf("cmsblog: build %s: %w", name, err)
		}
		res.Files = append(res.Files, name)
		return nil
	}
	page := func(cmp templ.Component) func(io.Writer) error {
		return func(w io.Writer) error { return cmp.Render(ctx, w) }
	}

	if err := write("index.html", page(b.Site.HomePage(posts, cms.StagePublished))); err != nil {
		return res, err
	}
	for _, p := range posts {
		if ReservedSlug(p.Slug) {
			return res, fmt.Errorf("cmsblog: build: post %s slug %q collides with a reserved site path", p.ID, p.Slug)
		}
		if !ValidSlug(p.Slug) {
			return res, fmt.Errorf("cmsblog: build: post %s has unusable slug %q", p.ID, p.Slug)
		}
		cmp, err := b.Site.PostPage(ctx, posts, cms.StagePublished, p.Slug)
		if err != nil {
			return res, err
		}
		if err := write(filepath.Join(p.Slug, "index.html"), page(cmp)); err != nil {
			return res, err
		}
		res.Posts++
	}
	if err := write("404.html", page(b.Site.NotFoundPage())); err != nil {
		return res, err
	}
	if err := write("feed.xml", func(w io.Writer) error { return b.Site.WriteFeed(w, posts) }); err != nil {
		return res, err
	}
	if err := write("sitemap.xml", func(w io.Writer) error { return b.Site.WriteSitemap(w, posts) }); err != nil {
		return res, err
	}
	if err := write("robots.txt", b.Site.WriteRobots); err != nil {
		return res, err
	}
	css := func(w io.Writer) error {
		_, err := w.Write(markdown.Stylesheet())
		return err
	}
	if err := write(filepath.Join("public", "highlight.css"), css); err != nil {
		return res, err
	}

	b.logger.Info("build complete", zap.String("out", b.OutDir), zap.Int("posts", res.Posts), zap.Int("files", len(res.Files)))
	return res, nil
}

// writeFile renders into memory first so a failed render leaves no partial file.
func (b *Builder) writeFile(name string, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	path := filepath.Join(b.OutDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
