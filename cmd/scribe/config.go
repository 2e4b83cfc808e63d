package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/scribe/internal/app"
	"github.com/dshills/scribe/internal/config"
)

func newConfigCmd(opts *app.Options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration scribe would run with: the built-in defaults,
overlaid by the config file, SCRIBE_* environment variables and flags.

The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(*opts)
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg, config.Format(strings.ToLower(format)))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatTOML), "output format: toml or yaml")

	cmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List the environment variables scribe reads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range config.EnvVars() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})
	return cmd
}
