package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/cmsblog"
	"github.com/eringen/cmsblog/markdown"
	"github.com/eringen/cmsblog/views"
)

func newShowCmd() *cobra.Command {
	var (
		draft bool
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Render one post in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := getEnv(cmd)
			if err != nil {
				return err
			}
			site, err := cmsblog.NewSite(e.cfg, views.Funcs(), cmsblog.WithLogger(e.logger))
			if err != nil {
				return err
			}
			stage := stageFlag(draft)
			posts, err := site.Posts(cmd.Context(), stage)
			if err != nil {
				return err
			}
			summary, n, ok := cmsblog.FindPost(posts, args[0])
			if !ok {
				return fmt.Errorf("post %q: %w", args[0], cmsblog.ErrNotFound)
			}
			post, err := site.Source.GetPost(cmd.Context(), stage, summary.ID)
			if err != nil {
				return err
			}
			title := strings.TrimSpace(post.Title)
			if title == "" {
				title = cmsblog.HumanizeSlug(post.Slug)
			}
			out, err := markdown.Terminal(terminalSource(title, post.CreatedAt, post.Body, n, site.Config), style, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&draft, "draft", false, "read the draft stage (needs cms.preview_token)")
	cmd.Flags().StringVar(&style, "style", "dark", "glamour style: dark, light, dracula, notty")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")
	return cmd
}

// terminalSource prefixes the body with the title and date and appends the
// neighbour links, mirroring the post page.
func terminalSource(title, createdAt, body string, n cmsblog.Neighbors, cfg cmsblog.SiteConfig) string {
	date, err := cmsblog.FormatDate(createdAt, cfg.Location())
	if err != nil {
		date = cmsblog.DateUnavailable
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n*%s*\n\n%s\n", title, date, body)
	if n.HasPrevious() || n.HasNext() {
		b.WriteString("\n---\n\n")
	}
	if n.HasPrevious() {
		fmt.Fprintf(&b, "← %s (%s)\n\n", n.Previous.Title, n.Previous.Slug)
	}
	if n.HasNext() {
		fmt.Fprintf(&b, "%s → (%s)\n", n.Next.Title, n.Next.Slug)
	}
	return b.String()
}
