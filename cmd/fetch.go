package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkellett/spawnclock/internal/config"
	"github.com/mkellett/spawnclock/internal/library"
	"github.com/mkellett/spawnclock/internal/ui"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <file|url>",
	Short: "Validate a build order and save it to the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		source := args[0]

		doc, err := loadSource(cfg, source)
		if err != nil {
			return err
		}

		id, _ := cmd.Flags().GetString("id")
		if id == "" {
			id = deriveID(source, doc.Name)
		}

		lib, err := library.Open(cfg.LibraryDir)
		if err != nil {
			return err
		}
		if err := lib.Put(id, doc, source); err != nil {
			return err
		}
		ui.New().Fetched(id, doc)
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("id", "", "library id to store under (default derived from the build name)")

	rootCmd.AddCommand(fetchCmd)
}

// deriveID slugs the build name into a filesystem-safe library id, falling
// back to the source file's base name.
func deriveID(source, name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '_', r == '-':
			return '-'
		default:
			return -1
		}
	}, name)
	slug = strings.Trim(slug, "-.")
	if slug != "" {
		return slug
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
