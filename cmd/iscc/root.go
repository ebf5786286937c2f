package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "iscc",
		Short:         "Generate ISCC composite identifiers for media files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.tika, "tika", "k", false, "Use an Apache Tika server for media-type detection and text extraction")
	pf.StringVar(&flags.host, "host", "localhost", "Hostname or IP address of the Tika server")
	pf.IntVarP(&flags.port, "port", "p", 9998, "Port of the Tika server")
	pf.CountVarP(&flags.verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newGenCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newSimCommand())
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
