package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luciopaiva/glacier-retrieve/internal/aws"
	"github.com/luciopaiva/glacier-retrieve/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List buckets",
	Long: `List all buckets visible to the configured credentials.

Examples:
  glacier-retrieve list
  glacier-retrieve list -p my-profile -r us-east-1`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := aws.NewClient(ctx,
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	storage := aws.NewStorageProvider(client)

	buckets, err := storage.ListBuckets(ctx)
	if err != nil {
		return err
	}

	if len(buckets) == 0 {
		fmt.Println("No buckets found")
		return nil
	}

	ui.PrintBucketTable(buckets)
	return nil
}
