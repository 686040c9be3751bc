// Package cms is the GraphQL client for the hosted content source that owns
// the blog's posts.
package cms

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the content source has no post for an id.
var ErrNotFound = errors.New("cms: post not found")

// Stage selects which content stage queries read from.
type Stage string

const (
	StagePublished Stage = "PUBLISHED"
	StageDraft     Stage = "DRAFT"
)

// PostSummary is one entry of the post list query.
type PostSummary struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"` // empty when the author left it out
	CreatedAt   string `json:"createdAt"`   // ISO-8601
}

// PostDetail is a full post as returned by the single post query.
type PostDetail struct {
	PostSummary
	Body string `json:"body"` // markdown source
}

// HasDescription reports whether the post carries a non-blank description.
func (p PostSummary) HasDescription() bool {
	return strings.TrimSpace(p.Description) != ""
}
