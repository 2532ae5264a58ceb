/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/hirestack/crm/config"
	"github.com/hirestack/crm/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Starts the account service",
	Long: `Starts the account service. Usage:

	crm account
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()

		logger, err := zap.NewProduction()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()

		srv, err := server.NewAccount(cmd.Context(), cfg, logger)
		if err != nil {
			logger.Fatal("failed to start account service", zap.Error(err))
		}
		logger.Info("account service listening", zap.Int("port", cfg.AccountPort))
		if err := srv.Start(); err != nil {
			logger.Fatal("account service error", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
}
