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

// directoryCmd represents the directory command
var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Starts the directory service",
	Long: `Starts the directory service. Usage:

	crm directory
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()

		logger, err := zap.NewProduction()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()

		srv, err := server.NewDirectory(cmd.Context(), cfg, logger)
		if err != nil {
			logger.Fatal("failed to start directory service", zap.Error(err))
		}
		logger.Info("directory service listening", zap.Int("port", cfg.DirectoryPort))
		if err := srv.Start(); err != nil {
			logger.Fatal("directory service error", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(directoryCmd)
}
