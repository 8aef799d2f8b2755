package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jeffrom/dualpack/bundler"
	"github.com/jeffrom/dualpack/stdio"
	"github.com/jeffrom/dualpack/watch"
)

func newWatchCmd() *cobra.Command {
	opts := &buildOpts{}
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "rebuild on source changes",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			std := stdio.FromContext(ctx)
			env, err := setupBuild(ctx, args, opts)
			if err != nil {
				return err
			}

			rebuild := func(ctx context.Context) error {
				if err := runBoth(ctx, bundler.ESBuild{}, env, opts); err != nil {
					return err
				}
				std.Infof("rebuilt %s -> %s", env.name, env.out)
				return nil
			}
			if err := rebuild(ctx); err != nil {
				std.Warningf("initial build failed: %v", err)
			}
			return watch.New(env.entries, rebuild).Run(ctx)
		},
	}
	addBuildFlags(cmd, opts)
	return cmd
}
