package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/eringen/cmsblog"
)

type ctxKey string

const envKey ctxKey = "env"

// env is what every subcommand needs once configuration is resolved.
type env struct {
	cfg    cmsblog.SiteConfig
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "cmsblog",
		Short:         "cmsblog - a personal blog rendered from a GraphQL CMS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			v := viper.New()
			if err := loadConfig(v, cfgPath); err != nil {
				return err
			}
			logger, err := cmsblog.NewLogger(v.GetString("log.level"), v.GetBool("log.development"))
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), envKey, &env{
				cfg:    siteConfig(v),
				logger: logger,
			}))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e, ok := cmd.Context().Value(envKey).(*env); ok {
				_ = e.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ./cmsblog.yaml)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newPostsCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newVersionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getEnv(cmd *cobra.Command) (*env, error) {
	e, ok := cmd.Context().Value(envKey).(*env)
	if !ok {
		return nil, errors.New("configuration not loaded")
	}
	return e, nil
}
