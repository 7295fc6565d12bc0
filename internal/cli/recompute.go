package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newRecomputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Drop cached matches of a job or worker and rank it again",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "job <job-id>",
		Short: "Rank workers for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, func(ctx context.Context, b *backend) (any, error) {
				return b.match.RecomputeJob(ctx, args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "worker <worker-id>",
		Short: "Rank open jobs for a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, func(ctx context.Context, b *backend) (any, error) {
				return b.match.RecomputeWorker(ctx, args[0])
			})
		},
	})

	return cmd
}
