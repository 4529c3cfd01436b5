package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkellett/spawnclock/internal/config"
	"github.com/mkellett/spawnclock/internal/library"
	"github.com/mkellett/spawnclock/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List build orders in the local library",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		lib, err := library.Open(cfg.LibraryDir)
		if err != nil {
			return err
		}
		entries, err := lib.List()
		if err != nil {
			return err
		}
		ui.New().Library(entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
