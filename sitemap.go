package cmsblog

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/eringen/cmsblog/cms"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes a sitemap listing the home page and every post.
func (s *Site) WriteSitemap(w io.Writer, posts []cms.PostSummary) error {
	base := s.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
	}
	for _, p := range posts {
		u := sitemapURL{Loc: BuildURL(base, p.Slug)}
		if t, err := ParseDate(p.CreatedAt, s.loc); err == nil {
			u.LastMod = t.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}

// WriteRobots writes robots.txt pointing crawlers at the sitemap.
func (s *Site) WriteRobots(w io.Writer) error {
	disallow := ""
	if s.Config.PreviewEnabled() {
		disallow = "Disallow: /preview\n"
	}
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\n%s\nSitemap: %s\n", disallow, BuildURL(s.Config.URL, "sitemap.xml"))
	return err
}
