// Package views is the default template set for cmsblog. Templates are
// html/template files embedded in the binary and exposed as templ components.
package views

import (
	"embed"
	"html/template"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/cmsblog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("views").Funcs(template.FuncMap{
	"join": strings.Join,
	// JSON-LD is marshalled by cmsblog and must not be re-escaped.
	"jsonld": func(s string) template.JS { return template.JS(s) },
}).ParseFS(templateFS, "templates/*.html"))

type homeData struct {
	Page  cmsblog.Page
	Posts []cmsblog.ListingEntry
}

type postData struct {
	Page cmsblog.Page
	Post cmsblog.PostView
}

// Funcs returns the view set for cmsblog.New and cmsblog.NewSite.
func Funcs() cmsblog.ViewFuncs {
	return cmsblog.ViewFuncs{
		Home:        Home,
		Post:        Post,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// Home renders the post listing.
func Home(page cmsblog.Page, posts []cmsblog.ListingEntry) templ.Component {
	return templ.FromGoHTML(templates.Lookup("home"), homeData{Page: page, Posts: posts})
}

// Post renders a single post with its previous/next links.
func Post(page cmsblog.Page, post cmsblog.PostView) templ.Component {
	return templ.FromGoHTML(templates.Lookup("post"), postData{Page: page, Post: post})
}

func NotFound(page cmsblog.Page) templ.Component {
	return templ.FromGoHTML(templates.Lookup("not_found"), page)
}

func ServerError(page cmsblog.Page) templ.Component {
	return templ.FromGoHTML(templates.Lookup("server_error"), page)
}
