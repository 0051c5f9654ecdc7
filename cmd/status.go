package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/luciopaiva/glacier-retrieve/internal/restore"
	"github.com/luciopaiva/glacier-retrieve/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status <bucket>",
	Short: "Show restore progress for a bucket",
	Long: `Query the restore state of every archival object in the bucket and
show which restores are in progress, which have completed (with their
expiry), and which were never requested.

Objects whose metadata cannot be fetched are listed as not requested
with unknown tier rather than failing the whole query.

Examples:
  glacier-retrieve status my-bucket
  glacier-retrieve status my-bucket --concurrency 20`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

var statusConcurrency int

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().IntVar(&statusConcurrency, "concurrency", restore.DefaultConcurrency, "Parallel metadata queries")
}

func runStatus(cmd *cobra.Command, args []string) error {
	bucket := args[0]
	ctx := context.Background()

	engine, err := newEngine(ctx)
	if err != nil {
		return err
	}

	summary, err := engine.AggregateStatus(ctx, bucket, restore.StatusOptions{
		Concurrency: statusConcurrency,
	})
	if err != nil {
		return err
	}

	ui.PrintStatusSummary(summary)
	return nil
}
