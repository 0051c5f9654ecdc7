package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luciopaiva/glacier-retrieve/internal/config"
	"github.com/luciopaiva/glacier-retrieve/internal/restore"
	"github.com/luciopaiva/glacier-retrieve/internal/ui"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <bucket>",
	Short: "Submit restore requests for all archival objects",
	Long: `Compute the restore plan for the bucket and submit one restore
request per archival object. Objects that fail to submit are reported
at the end but never abort the rest of the batch; re-run the command
to retry them.

Restored copies appear after the provider-side delay (minutes to many
hours depending on --tier) and expire after --days days.

Examples:
  glacier-retrieve restore my-bucket
  glacier-retrieve restore my-bucket --tier Standard --days 7
  glacier-retrieve restore my-bucket --concurrency 20`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

var (
	restoreTier        string
	restoreDays        int
	restoreConcurrency int
)

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().StringVar(&restoreTier, "tier", "", "Retrieval tier: Bulk, Standard or Expedited (default Bulk)")
	restoreCmd.Flags().IntVar(&restoreDays, "days", 0, "Days the restored copy stays readable (default 2)")
	restoreCmd.Flags().IntVar(&restoreConcurrency, "concurrency", restore.DefaultConcurrency, "Parallel restore submissions")
}

func runRestore(cmd *cobra.Command, args []string) error {
	bucket := args[0]

	// Interrupt stops dispatching new requests; in-flight ones finish
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := newEngine(ctx)
	if err != nil {
		return err
	}

	plan, err := engine.Plan(ctx, bucket)
	if err != nil {
		return err
	}

	ui.PrintPlan(plan)

	if plan.IsEmpty() {
		return nil
	}

	opts := restore.SubmitOptions{
		Tier:          restoreTier,
		RetentionDays: int32(restoreDays),
		Concurrency:   restoreConcurrency,
		Progress: func(processed, total int) {
			fmt.Printf("  processed %d/%d objects\n", processed, total)
		},
	}
	applySavedDefaults(&opts)

	outcome := engine.Submit(ctx, plan, opts)

	fmt.Println()
	ui.PrintOutcome(outcome)

	if ctx.Err() != nil {
		fmt.Println(ui.HintStyle.Render("  interrupted: remaining objects were not submitted"))
	}

	return nil
}

// applySavedDefaults fills tier and retention from the config file when
// the flags were left unset
func applySavedDefaults(opts *restore.SubmitOptions) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return
	}

	if opts.Tier == "" && cfg.RestoreTier != "" {
		opts.Tier = cfg.RestoreTier
	}
	if opts.RetentionDays <= 0 && cfg.RetentionDays > 0 {
		opts.RetentionDays = int32(cfg.RetentionDays)
	}
}
