package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/cmsblog"
	"github.com/eringen/cmsblog/views"
)

func newBuildCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the published site to static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := getEnv(cmd)
			if err != nil {
				return err
			}
			cfg := e.cfg
			if outDir != "" {
				cfg.OutDir = outDir
			}
			if err := cfg.Check(); err != nil {
				return err
			}
			b, err := cmsblog.NewBuilder(cfg, views.Funcs(), cmsblog.WithLogger(e.logger))
			if err != nil {
				return err
			}
			res, err := b.Build(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Built %d posts (%d files) into %s\n", res.Posts, len(res.Files), b.OutDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides build.out_dir)")
	return cmd
}
