package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/scribe/internal/app"
	"github.com/dshills/scribe/internal/renderer/backend"
)

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "scribe [file]",
		Short: "A small terminal text editor",
		Long: `scribe edits one file in the terminal.

Without a file it starts with an empty scratch buffer. Keys held down
repeat after a short delay; save with Ctrl+S and quit with Ctrl+Q.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.File = args[0]
			}
			return runEditor(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: "+app.Options{}.ConfigFile()+")")
	flags.StringVar(&opts.Theme, "theme", "", "color theme")
	flags.BoolVarP(&opts.Debug, "debug", "d", false, "debug logging and dispatch metrics")
	flags.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	flags.StringSliceVar(&opts.Plugins, "plugin", nil, "load a Lua plugin file or directory (repeatable)")
	flags.BoolVar(&opts.NoPlugins, "no-plugins", false, "do not load plugins")
	flags.BoolVar(&opts.NoWatch, "no-watch", false, "do not reload the config or file when they change on disk")

	root.AddCommand(newKeysCmd(&opts), newConfigCmd(&opts))
	return root
}

func runEditor(ctx context.Context, opts app.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}

	application, err := app.New(opts, term)
	if err != nil {
		return err
	}
	defer application.Close()

	return application.Run(ctx)
}
