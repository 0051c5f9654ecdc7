package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luciopaiva/glacier-retrieve/internal/config"
	"github.com/luciopaiva/glacier-retrieve/internal/ui"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Show or save default settings",
	Long: `Show the saved defaults, or save new ones with flags. Saved values
live in ~/.glacier-retrieve/config.yaml and are used by future runs
unless overridden on the command line.

Examples:
  glacier-retrieve configure                              # show current defaults
  glacier-retrieve configure --save-profile my-profile
  glacier-retrieve configure --save-region us-east-1
  glacier-retrieve configure --save-tier Standard --save-days 7`,
	RunE: runConfigure,
}

var (
	saveProfile string
	saveRegion  string
	saveTier    string
	saveDays    int
)

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().StringVar(&saveProfile, "save-profile", "", "Save a default AWS profile")
	configureCmd.Flags().StringVar(&saveRegion, "save-region", "", "Save a default AWS region")
	configureCmd.Flags().StringVar(&saveTier, "save-tier", "", "Save a default retrieval tier (Bulk, Standard or Expedited)")
	configureCmd.Flags().IntVar(&saveDays, "save-days", 0, "Save a default retention in days")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	changed := false
	if saveProfile != "" {
		cfg.AWSProfile = saveProfile
		changed = true
	}
	if saveRegion != "" {
		cfg.AWSRegion = saveRegion
		changed = true
	}
	if saveTier != "" {
		cfg.RestoreTier = saveTier
		changed = true
	}
	if saveDays > 0 {
		cfg.RetentionDays = saveDays
		changed = true
	}

	if changed {
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("Saved to %s\n", config.GetConfigPath())
	}

	fmt.Printf("Profile:   %s\n", orUnset(cfg.AWSProfile))
	fmt.Printf("Region:    %s\n", orUnset(cfg.AWSRegion))
	fmt.Printf("Tier:      %s\n", orUnset(cfg.RestoreTier))
	if cfg.RetentionDays > 0 {
		fmt.Printf("Retention: %d days\n", cfg.RetentionDays)
	} else {
		fmt.Printf("Retention: %s\n", orUnset(""))
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return ui.MutedStyle.Render("(not set)")
	}
	return s
}
