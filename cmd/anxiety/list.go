package main

import (
	"github.com/spf13/cobra"
)

func init() {
	listCmd.RunE = listFiles
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list FILE|GLOB...",
	Short: "List all quotes found in the files",
	Args:  cobra.MinimumNArgs(1),
}

func listFiles(cmd *cobra.Command, patterns []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := scan(cfg, patterns)
	if err != nil {
		return err
	}
	return store.WriteListing(cmd.OutOrStdout())
}
