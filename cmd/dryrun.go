package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luciopaiva/glacier-retrieve/internal/aws"
	"github.com/luciopaiva/glacier-retrieve/internal/restore"
	"github.com/luciopaiva/glacier-retrieve/internal/ui"
)

var dryRunCmd = &cobra.Command{
	Use:   "dry-run <bucket>",
	Short: "Preview a restore without submitting anything",
	Long: `Scan the bucket and show what a restore run would do: the size
distribution across storage tiers and the archival objects that would
be restored, largest first. Makes no changes.

Examples:
  glacier-retrieve dry-run my-bucket`,
	Args: cobra.ExactArgs(1),
	RunE: runDryRun,
}

func init() {
	rootCmd.AddCommand(dryRunCmd)
}

func runDryRun(cmd *cobra.Command, args []string) error {
	bucket := args[0]
	ctx := context.Background()

	engine, err := newEngine(ctx)
	if err != nil {
		return err
	}

	plan, err := engine.Plan(ctx, bucket)
	if err != nil {
		return err
	}

	ui.PrintPlan(plan)
	return nil
}

// newEngine builds the restore engine on top of an S3-backed provider
func newEngine(ctx context.Context) (*restore.Engine, error) {
	client, err := aws.NewClient(ctx,
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}

	return restore.NewEngine(aws.NewStorageProvider(client)), nil
}
