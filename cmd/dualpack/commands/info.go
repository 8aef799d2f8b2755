package commands

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeffrom/dualpack/bundler"
	"github.com/jeffrom/dualpack/facts"
	"github.com/jeffrom/dualpack/stdio"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "print host environment and supported build targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			std := stdio.FromContext(ctx)

			f, err := facts.Gather(ctx)
			if err != nil {
				return err
			}
			if err := f.TextSummary(std.Stdout()); err != nil {
				return err
			}

			names := bundler.PlatformNames()
			sort.Strings(names)
			std.Printf("platforms: %s\n", strings.Join(names, ", "))
			return nil
		},
	}
}
