package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type invalidated struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
	Rows *int64 `json:"rows,omitempty"`
}

func newInvalidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "invalidate <job|worker|all> [id]",
		Short:     "Delete cached matches without recomputing",
		ValidArgs: []string{"job", "worker", "all"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] == "all" {
				return nil
			}
			if len(args) != 2 || (args[0] != "job" && args[0] != "worker") {
				return fmt.Errorf("usage: %s", cmd.Use)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, func(ctx context.Context, b *backend) (any, error) {
				switch args[0] {
				case "job":
					return invalidated{Kind: "job", ID: args[1]}, b.inv.InvalidateJob(ctx, args[1])
				case "worker":
					return invalidated{Kind: "worker", ID: args[1]}, b.inv.InvalidateWorker(ctx, args[1])
				default:
					n, err := b.inv.FlushAll(ctx)
					return invalidated{Kind: "all", Rows: &n}, err
				}
			})
		},
	}
}
