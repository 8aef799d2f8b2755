package commands

import (
	"github.com/spf13/cobra"

	"github.com/jeffrom/dualpack/bundler"
	"github.com/jeffrom/dualpack/hook"
)

func newESMCmd() *cobra.Command {
	opts := &buildOpts{}
	cmd := &cobra.Command{
		Use:   "esm [dir]",
		Short: "build ESM outputs only",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := setupBuild(ctx, args, opts)
			if err != nil {
				return err
			}
			if err := bundler.BuildESM(ctx, bundler.ESBuild{}, env.esmOptions(opts)); err != nil {
				return err
			}
			if opts.Postbuild != "" {
				return hook.Run(ctx, env.dir, opts.Postbuild)
			}
			return nil
		},
	}
	addBuildFlags(cmd, opts)
	return cmd
}
