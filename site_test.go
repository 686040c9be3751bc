package cmsblog

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/cmsblog/cms"
)

type stubSource struct {
	posts   []cms.PostSummary
	details map[string]cms.PostDetail
	err     error
}

func (s stubSource) ListPosts(ctx context.Context, stage cms.Stage) ([]cms.PostSummary, error) {
	return s.posts, s.err
}

func (s stubSource) GetPost(ctx context.Context, stage cms.Stage, id string) (cms.PostDetail, error) {
	d, ok := s.details[id]
	if !ok {
		return cms.PostDetail{}, cms.ErrNotFound
	}
	return d, nil
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// recordingViews captures what the site hands to each view.
type recordingViews struct {
	page    Page
	entries []ListingEntry
	post    PostView
}

func (r *recordingViews) funcs() ViewFuncs {
	return ViewFuncs{
		Home: func(p Page, e []ListingEntry) templ.Component {
			r.page, r.entries = p, e
			return text("home")
		},
		Post: func(p Page, v PostView) templ.Component {
			r.page, r.post = p, v
			return text("post")
		},
		NotFound:    func(p Page) templ.Component { return text("404") },
		ServerError: func(p Page) templ.Component { return text("500") },
	}
}

func testSource() stubSource {
	posts := []cms.PostSummary{
		{ID: "2", Slug: "second", Title: "Second", Description: "two", CreatedAt: "2021-03-06T10:00:00Z"},
		{ID: "1", Slug: "first", Title: "First", CreatedAt: "2021-03-05T10:00:00Z"},
	}
	return stubSource{
		posts: posts,
		details: map[string]cms.PostDetail{
			"2": {PostSummary: posts[0], Body: "Hello **there**"},
			"1": {PostSummary: posts[1], Body: "A long first post body about things."},
		},
	}
}

func newTestSite(t *testing.T, rec *recordingViews) *Site {
	t.Helper()
	cfg := SiteConfig{
		Name:        "Example",
		URL:         "https://example.com",
		Description: "Site description",
		Author:      "Sam",
	}
	s, err := NewSite(cfg, rec.funcs(), WithSource(testSource()))
	if err != nil {
		t.Fatalf("NewSite: %v", err)
	}
	return s
}

func TestNewSiteNeedsEndpointWithoutSource(t *testing.T) {
	if _, err := NewSite(SiteConfig{}, ViewFuncs{}); err == nil {
		t.Fatal("NewSite without endpoint or source succeeded")
	}
}

func TestHomePage(t *testing.T) {
	rec := &recordingViews{}
	s := newTestSite(t, rec)
	posts, err := s.Posts(context.Background(), cms.StagePublished)
	if err != nil {
		t.Fatal(err)
	}
	s.HomePage(posts, cms.StagePublished)

	if len(rec.entries) != 2 || rec.entries[0].Slug != "second" {
		t.Fatalf("entries = %+v", rec.entries)
	}
	if rec.entries[1].Description != DefaultDescriptionPlaceholder {
		t.Errorf("placeholder = %q", rec.entries[1].Description)
	}
	if rec.page.Meta.OGType != "website" || rec.page.Preview {
		t.Errorf("page = %+v", rec.page)
	}
	if !strings.Contains(rec.page.Meta.JSONLD, `"WebSite"`) {
		t.Errorf("JSONLD = %s", rec.page.Meta.JSONLD)
	}
}

func TestPostPage(t *testing.T) {
	rec := &recordingViews{}
	s := newTestSite(t, rec)
	posts, _ := s.Posts(context.Background(), cms.StageDraft)

	if _, err := s.PostPage(context.Background(), posts, cms.StageDraft, "first"); err != nil {
		t.Fatalf("PostPage: %v", err)
	}
	if rec.post.Title != "First" || rec.post.Date != "March 5, 2021" {
		t.Errorf("post = %+v", rec.post)
	}
	if rec.post.Neighbors.HasPrevious() || !rec.post.Neighbors.HasNext() {
		t.Errorf("neighbors = %+v", rec.post.Neighbors)
	}
	if rec.page.Meta.URL != "https://example.com/first" || rec.page.Meta.OGType != "article" {
		t.Errorf("meta = %+v", rec.page.Meta)
	}
	if rec.page.Meta.Description != "A long first post body about things." {
		t.Errorf("description excerpt = %q", rec.page.Meta.Description)
	}
	if !strings.Contains(rec.page.Meta.JSONLD, `"description":"A long first post body about things."`) {
		t.Errorf("JSONLD description = %s", rec.page.Meta.JSONLD)
	}
	if !rec.page.Preview {
		t.Error("draft page not marked as preview")
	}
}

func TestPostPageNotFound(t *testing.T) {
	s := newTestSite(t, &recordingViews{})
	posts, _ := s.Posts(context.Background(), cms.StagePublished)
	if _, err := s.PostPage(context.Background(), posts, cms.StagePublished, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("PostPage(missing) error = %v, want ErrNotFound", err)
	}
}

func TestPostsWrapsSourceError(t *testing.T) {
	s, err := NewSite(SiteConfig{}, ViewFuncs{}, WithSource(stubSource{err: errors.New("offline")}))
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Posts(context.Background(), cms.StagePublished)
	if err == nil || !strings.Contains(err.Error(), "offline") {
		t.Errorf("Posts error = %v", err)
	}
}

func TestWriteFeed(t *testing.T) {
	s := newTestSite(t, &recordingViews{})
	var buf bytes.Buffer
	if err := s.WriteFeed(&buf, testSource().posts); err != nil {
		t.Fatal(err)
	}
	var feed rssXML
	if err := xml.Unmarshal(buf.Bytes(), &feed); err != nil {
		t.Fatalf("feed is not valid XML: %v", err)
	}
	if feed.Channel.Title != "Example" || len(feed.Channel.Items) != 2 {
		t.Fatalf("channel = %+v", feed.Channel)
	}
	item := feed.Channel.Items[0]
	if item.Link != "https://example.com/second" || item.PubDate != "Sat, 06 Mar 2021 10:00:00 +0000" {
		t.Errorf("item = %+v", item)
	}
}

func TestWriteSitemap(t *testing.T) {
	s := newTestSite(t, &recordingViews{})
	var buf bytes.Buffer
	if err := s.WriteSitemap(&buf, testSource().posts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"<loc>https://example.com/</loc>",
		"<loc>https://example.com/first</loc>",
		"<lastmod>2021-03-06</lastmod>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sitemap missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRobots(t *testing.T) {
	s := newTestSite(t, &recordingViews{})
	var buf bytes.Buffer
	if err := s.WriteRobots(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Sitemap: https://example.com/sitemap.xml") {
		t.Errorf("robots = %q", buf.String())
	}
	if strings.Contains(buf.String(), "Disallow") {
		t.Errorf("robots disallows without preview: %q", buf.String())
	}
}
