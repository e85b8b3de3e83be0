package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "fitting-room-api",
	Short: "Virtual fitting room API service",
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
}
