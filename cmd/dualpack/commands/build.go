package commands

import (
	"github.com/spf13/cobra"

	"github.com/jeffrom/dualpack/bundler"
	"github.com/jeffrom/dualpack/hook"
	"github.com/jeffrom/dualpack/stdio"
)

func newBuildCmd() *cobra.Command {
	opts := &buildOpts{}
	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "build ESM and CJS outputs",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := setupBuild(ctx, args, opts)
			if err != nil {
				return err
			}

			if err := runBoth(ctx, bundler.ESBuild{}, env, opts); err != nil {
				return err
			}
			if opts.Postbuild != "" {
				if err := hook.Run(ctx, env.dir, opts.Postbuild); err != nil {
					return err
				}
			}
			stdio.FromContext(ctx).Infof("built %s -> %s", env.name, env.out)
			return nil
		},
	}
	addBuildFlags(cmd, opts)
	return cmd
}
