package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/scribe/internal/app"
	"github.com/dshills/scribe/internal/input/keymap"
)

func newKeysCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the effective key bindings",
		Long: `List every key binding in effect, grouped by category.

Bindings from the [[keymap]] entries of the config file replace the
built-in binding for the same key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(*opts)
			if err != nil {
				return err
			}

			reg := keymap.NewRegistry()
			if err := reg.Register(keymap.Default()); err != nil {
				return err
			}
			if err := reg.Register(cfg.UserKeymap()); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, group := range keymap.GroupByCategory(reg.Bindings()) {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s\n", group.Name)
				for _, b := range group.Bindings {
					action := b.Action
					if b.Arg != "" {
						action += " " + b.Arg
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\n", b.Keys, action, b.Description)
				}
			}
			return w.Flush()
		},
	}
}
