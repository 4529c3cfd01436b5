package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkellett/spawnclock/internal/build"
	"github.com/mkellett/spawnclock/internal/config"
	"github.com/mkellett/spawnclock/internal/fetch"
	"github.com/mkellett/spawnclock/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|url> [...]",
	Short: "Check build-order documents without running the timer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		printer := ui.New()

		ok := true
		for _, source := range args {
			doc, err := loadSource(cfg, source)
			printer.ValidateResult(source, doc, err)
			if err != nil {
				ok = false
			}
		}
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// loadSource fetches and parses a document from a file path or URL.
func loadSource(cfg config.Config, source string) (*build.BuildDocument, error) {
	var data []byte
	var err error
	if fetch.IsURL(source) {
		client := fetch.NewClient(time.Duration(cfg.FetchTimeoutSeconds) * time.Second)
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.FetchTimeoutSeconds)*time.Second)
		defer cancel()
		data, err = client.FromURL(ctx, source)
	} else {
		data, err = fetch.FromFile(source)
	}
	if err != nil {
		return nil, err
	}
	return build.ParseDocument(data)
}
