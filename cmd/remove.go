package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkellett/spawnclock/internal/config"
	"github.com/mkellett/spawnclock/internal/library"
	"github.com/mkellett/spawnclock/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a build order from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		lib, err := library.Open(cfg.LibraryDir)
		if err != nil {
			return err
		}
		if err := lib.Remove(args[0]); err != nil {
			return fmt.Errorf("removing %q: %w", args[0], err)
		}
		ui.New().Removed(args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
