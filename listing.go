package cmsblog

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/cmsblog/cms"
)

// DefaultDescriptionPlaceholder is shown for posts without a description.
const DefaultDescriptionPlaceholder = "No description yet."

// BuildListing maps post summaries onto listing entries, one per post and in
// the order given. Dates are formatted in loc; a post without a description
// gets placeholder.
func BuildListing(posts []cms.PostSummary, loc *time.Location, placeholder string) []ListingEntry {
	entries := make([]ListingEntry, 0, len(posts))
	for _, p := range posts {
		date, dateErr := displayDate(p.CreatedAt, loc)
		entry := ListingEntry{
			Slug:           p.Slug,
			Title:          headingFor(p),
			Link:           PostPath(p.Slug),
			Date:           date,
			DateErr:        dateErr,
			Description:    placeholder,
			HasDescription: p.HasDescription(),
		}
		if entry.HasDescription {
			entry.Description = strings.TrimSpace(p.Description)
		}
		entries = append(entries, entry)
	}
	return entries
}

// headingFor returns the post title, or its slug made readable when the
// title is blank.
func headingFor(p cms.PostSummary) string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	return HumanizeSlug(p.Slug)
}

// HumanizeSlug turns "my-first_post" into "My First Post".
func HumanizeSlug(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}
