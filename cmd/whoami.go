package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luciopaiva/glacier-retrieve/internal/aws"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the AWS identity in use",
	Long: `Print the STS caller identity for the configured credentials. Useful
to verify which account and role the tool would operate as before
running a restore.

Examples:
  glacier-retrieve whoami
  glacier-retrieve whoami -p my-profile`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	identity, err := aws.GetCallerIdentity(GetProfile(), GetRegion())
	if err != nil {
		return fmt.Errorf("failed to get caller identity: %w", err)
	}

	fmt.Printf("Account: %s\n", identity.Account)
	fmt.Printf("ARN:     %s\n", identity.Arn)
	fmt.Printf("User ID: %s\n", identity.UserID)
	return nil
}
