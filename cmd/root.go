package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luciopaiva/glacier-retrieve/internal/config"
)

var (
	// Global flags
	profile string
	region  string
)

var rootCmd = &cobra.Command{
	Use:   "glacier-retrieve",
	Short: "Orchestrate restores of Glacier-class S3 objects",
	Long: `glacier-retrieve manages asynchronous retrieval of objects stored in
archival (Glacier-class) S3 storage. Archival objects cannot be read
directly: a restore must be requested first, and a temporary readable
copy becomes available hours later.

Typical workflow:
  glacier-retrieve list                  # find the bucket
  glacier-retrieve dry-run my-bucket     # preview what a restore would touch
  glacier-retrieve restore my-bucket     # submit restore requests
  glacier-retrieve status my-bucket      # poll until restores complete

The tool keeps no state between runs; every command re-derives its view
from S3. Failed submissions are reported but never retried automatically:
re-run 'restore' to retry them.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
}

func initConfig() {
	// Read from environment variables
	viper.SetEnvPrefix("GR")
	viper.AutomaticEnv()

	// Priority for profile: --profile flag > saved config > AWS_PROFILE env
	if profile == "" {
		if saved := config.GetSavedProfile(); saved != "" {
			profile = saved
		} else {
			profile = os.Getenv("AWS_PROFILE")
		}
	}

	// Same fallback chain for the region
	if region == "" {
		if saved := config.GetSavedRegion(); saved != "" {
			region = saved
		} else {
			region = os.Getenv("AWS_REGION")
			if region == "" {
				region = os.Getenv("AWS_DEFAULT_REGION")
			}
		}
	}
}

// GetProfile returns the AWS profile
func GetProfile() string {
	return profile
}

// GetRegion returns the AWS region
func GetRegion() string {
	return region
}
