// Package commands contains the available dualpack cli commands.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jeffrom/dualpack/stdio"
)

func ExecArgs(ctx context.Context, args []string) error {
	std := &stdio.StdIO{}
	rootCmd := &cobra.Command{
		Use:           "dualpack",
		Short:         "build dual ESM/CJS package outputs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&std.Quiet, "quiet", "q", false, "print less")
	flags.BoolVarP(&std.Verbose, "verbose", "v", false, "print more")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newESMCmd())
	rootCmd.AddCommand(newCJSCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newInfoCmd())

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(stdio.SetContext(ctx, std))
}
