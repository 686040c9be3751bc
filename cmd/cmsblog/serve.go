package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/cmsblog"
	"github.com/eringen/cmsblog/views"
)

func newServeCmd() *cobra.Command {
	var addr, staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the blog over HTTP, rendering every request from the CMS",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := getEnv(cmd)
			if err != nil {
				return err
			}
			cfg := e.cfg
			if addr != "" {
				cfg.Addr = addr
			}
			if err := cfg.Check(); err != nil {
				return err
			}
			app, err := cmsblog.New(cfg, views.Funcs(),
				cmsblog.WithLogger(e.logger),
				cmsblog.WithStaticDir(staticDir),
			)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&staticDir, "static", "static", "directory served under /public")
	return cmd
}
