package cmsblog

import "html/template"

// SiteMetadata is the site-wide information every page shows.
type SiteMetadata struct {
	Title       string
	Author      string
	Description string
	URL         string
}

// PageMeta carries per-page SEO metadata into the layout's <head>.
type PageMeta struct {
	Title       string
	Description string
	Keywords    []string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      string // Schema.org block, already marshalled
}

// Page is the shell every view renders into.
type Page struct {
	Meta    PageMeta
	Site    SiteMetadata
	Preview bool // content was read from the draft stage
}

// AdjacentPost is the previous or next post linked from a post page.
type AdjacentPost struct {
	Slug  string
	Title string
}

// Link returns the route of the adjacent post.
func (p AdjacentPost) Link() string {
	return PostPath(p.Slug)
}

// Neighbors holds the optional previous (older) and next (newer) posts.
// A nil field means there is no post in that direction.
type Neighbors struct {
	Previous *AdjacentPost
	Next     *AdjacentPost
}

// HasPrevious reports whether a previous post exists.
func (n Neighbors) HasPrevious() bool { return n.Previous != nil }

// HasNext reports whether a next post exists.
func (n Neighbors) HasNext() bool { return n.Next != nil }

// ListingEntry is one row of the post listing.
type ListingEntry struct {
	Slug           string
	Title          string
	Link           string
	Date           string
	DateErr        error // set when the creation date could not be parsed
	Description    string
	HasDescription bool // false when Description is the placeholder
}

// PostView is everything the post template needs for one post.
type PostView struct {
	Slug        string
	Title       string
	Link        string
	Date        string
	DateErr     error
	Description string
	Body        template.HTML
	BodyErr     error // set when the body could not be converted; Body is empty
	Neighbors   Neighbors
}
