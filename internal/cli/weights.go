package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/yoockh/workmatch/internal/matching"
)

func newWeightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Show or set matching weights",
	}
	cmd.AddCommand(newWeightsShowCmd(), newWeightsSetCmd())
	return cmd
}

func newWeightsShowCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the weights a job in the category would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, func(ctx context.Context, b *backend) (any, error) {
				return b.weights.Get(ctx, optional(category))
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category id (default is the global row)")
	return cmd
}

func newWeightsSetCmd() *cobra.Command {
	var (
		category string
		w        matching.Weights
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a weight vector; it must sum to 1.0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, func(ctx context.Context, b *backend) (any, error) {
				return b.weights.Update(ctx, optional(category), w)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&category, "category", "", "category id (default is the global row)")
	f.Float64Var(&w.Skill, "skill", 0, "skill weight")
	f.Float64Var(&w.TargetJob, "target-job", 0, "target job weight")
	f.Float64Var(&w.Experience, "experience", 0, "experience weight")
	f.Float64Var(&w.Education, "education", 0, "education weight")
	f.Float64Var(&w.Location, "location", 0, "location weight")
	f.Float64Var(&w.Rating, "rating", 0, "rating weight")
	return cmd
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
