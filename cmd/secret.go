/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/hirestack/crm/internal/secret"
	"github.com/spf13/cobra"
)

// secretCmd represents the secret command.
var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Generate a random JWT signing secret",
	Long: `Generates 32 bytes of cryptographically secure randomness encoded as
base64, suitable for the JWT_SECRET environment variable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := secret.Generate()
		if err != nil {
			return fmt.Errorf("generate secret failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(secretCmd)
}
