package cmsblog

import (
	"encoding/json"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"
)

var reSlug = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._~-]*$`)

// reservedSlugs are routes and build outputs a post cannot take over.
var reservedSlugs = map[string]struct{}{
	"index.html":  {},
	"404.html":    {},
	"feed.xml":    {},
	"sitemap.xml": {},
	"robots.txt":  {},
	"favicon.svg": {},
	"public":      {},
	"metrics":     {},
	"healthz":     {},
	"preview":     {},
}

// ReservedSlug reports whether slug names a site route or build output.
// The match ignores case so builds on case-insensitive filesystems agree.
func ReservedSlug(slug string) bool {
	_, ok := reservedSlugs[strings.ToLower(slug)]
	return ok
}

// ValidSlug reports whether slug is non-empty, safe to use as a single
// URL path segment and directory name, and not reserved.
func ValidSlug(slug string) bool {
	return reSlug.MatchString(slug) && !strings.Contains(slug, "..") && !ReservedSlug(slug)
}

// PostPath returns the site-relative route of a post.
func PostPath(slug string) string {
	return "/" + url.PathEscape(slug)
}

// BuildURL joins a base URL with path segments.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(site SiteMetadata) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Title,
		"url":      BuildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	return marshalJsonLD(data)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(site SiteMetadata, post PostView, createdAt string, keywords []string) string {
	postURL := BuildURL(site.URL, post.Slug)
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "BlogPosting",
		"headline": post.Title,
		"url":      postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Description != "" {
		data["description"] = post.Description
	}
	if t, err := ParseDate(createdAt, time.UTC); err == nil {
		data["datePublished"] = t.Format(time.RFC3339)
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if site.Title != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  site.Title,
		}
	}
	if len(keywords) > 0 {
		data["keywords"] = strings.Join(keywords, ", ")
	}
	return marshalJsonLD(data)
}

func marshalJsonLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
