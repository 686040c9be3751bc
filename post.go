package cmsblog

import (
	"context"
	"strings"
	"time"

	"github.com/eringen/cmsblog/cms"
	"github.com/eringen/cmsblog/markdown"
)

// BuildPostView converts the post body and assembles the post page view.
// Conversion and date failures are recorded on the view, never hidden.
// A nil md uses a renderer with default options.
func BuildPostView(ctx context.Context, md *markdown.Renderer, post cms.PostDetail, n Neighbors, loc *time.Location) PostView {
	if md == nil {
		md = markdown.New(markdown.Options{})
	}
	date, dateErr := displayDate(post.CreatedAt, loc)
	body, bodyErr := md.Render(ctx, post.Body)
	return PostView{
		Slug:        post.Slug,
		Title:       headingFor(post.PostSummary),
		Link:        PostPath(post.Slug),
		Date:        date,
		DateErr:     dateErr,
		Description: strings.TrimSpace(post.Description),
		Body:        body,
		BodyErr:     bodyErr,
		Neighbors:   n,
	}
}

// FindPost locates slug in a newest-first post list and returns the post
// with its neighbours.
func FindPost(posts []cms.PostSummary, slug string) (cms.PostSummary, Neighbors, bool) {
	i := indexOf(posts, slug)
	if i < 0 {
		return cms.PostSummary{}, Neighbors{}, false
	}
	return posts[i], neighborsAt(posts, i), true
}

// NeighborsOf returns the neighbours of slug in a newest-first post list:
// Previous is the older post after it, Next the newer post before it.
func NeighborsOf(posts []cms.PostSummary, slug string) (Neighbors, bool) {
	i := indexOf(posts, slug)
	if i < 0 {
		return Neighbors{}, false
	}
	return neighborsAt(posts, i), true
}

func indexOf(posts []cms.PostSummary, slug string) int {
	for i, p := range posts {
		if p.Slug == slug {
			return i
		}
	}
	return -1
}

func neighborsAt(posts []cms.PostSummary, i int) Neighbors {
	var n Neighbors
	if i+1 < len(posts) {
		n.Previous = adjacent(posts[i+1])
	}
	if i > 0 {
		n.Next = adjacent(posts[i-1])
	}
	return n
}

func adjacent(p cms.PostSummary) *AdjacentPost {
	return &AdjacentPost{Slug: p.Slug, Title: headingFor(p)}
}
