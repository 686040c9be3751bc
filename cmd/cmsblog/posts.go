package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/cmsblog"
	"github.com/eringen/cmsblog/cms"
	"github.com/eringen/cmsblog/views"
)

func stageFlag(draft bool) cms.Stage {
	if draft {
		return cms.StageDraft
	}
	return cms.StagePublished
}

func newPostsCmd() *cobra.Command {
	var draft bool

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts as the listing page shows them",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := getEnv(cmd)
			if err != nil {
				return err
			}
			site, err := cmsblog.NewSite(e.cfg, views.Funcs(), cmsblog.WithLogger(e.logger))
			if err != nil {
				return err
			}
			posts, err := site.Posts(cmd.Context(), stageFlag(draft))
			if err != nil {
				return err
			}
			entries := cmsblog.BuildListing(posts, site.Config.Location(), site.Config.DescriptionPlaceholder)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No posts.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tSLUG\tTITLE\tDESCRIPTION")
			for _, en := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", en.Date, en.Slug, en.Title, en.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&draft, "draft", false, "read the draft stage (needs cms.preview_token)")
	return cmd
}
