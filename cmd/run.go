package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkellett/spawnclock/internal/build"
	"github.com/mkellett/spawnclock/internal/config"
	"github.com/mkellett/spawnclock/internal/fetch"
	"github.com/mkellett/spawnclock/internal/library"
	"github.com/mkellett/spawnclock/internal/telemetry"
	"github.com/mkellett/spawnclock/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run [id|file|url]",
	Short: "Start the timer for a build order",
	Long: "Run the interactive timer. The build order comes from a library id, a\n" +
		"local JSON file, or an http(s) URL. With no argument, the last-used build\n" +
		"(or the built-in default) is loaded. Local files are watched for edits\n" +
		"and reload live into the running timer.",
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Bool("no-bell", false, "disable the step-completion bell")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lib, err := library.Open(cfg.LibraryDir)
	if err != nil {
		return err
	}

	source := ""
	if len(args) > 0 {
		source = args[0]
	} else if cfg.DefaultBuild != "" {
		source = cfg.DefaultBuild
	}

	doc, watchPath, err := resolveDocument(lib, cfg, source)
	if err != nil {
		return err
	}

	bell := cfg.Bell
	if noBell, _ := cmd.Flags().GetBool("no-bell"); noBell {
		bell = false
	}

	emitter := openEmitter(cfg, lib)
	defer emitter.Close()
	emitter.Record(telemetry.KindSessionStart, doc.Name, "0:00",
		map[string]any{"source": source})

	m := tui.NewAppModel(doc, lib, tui.Options{
		Source:  source,
		Bell:    bell,
		Emitter: emitter,
	})
	program := tui.NewProgram(m)

	if watchPath != "" {
		watcher, err := library.NewWatcher(watchPath)
		if err == nil && watcher.Start() == nil {
			defer watcher.Stop()
			go func() {
				for path := range watcher.Changes {
					program.Send(tui.MsgBuildFileChanged{Path: path})
				}
			}()
		}
		// A failed watch only disables live reload; the timer still runs.
	}

	_, err = program.Run()
	return err
}

// resolveDocument loads the document named by source: a library id, a local
// file path, or an http(s) URL. An empty source means the last-used build.
// The second return is the path to watch for live reload, when the source is
// a local file.
func resolveDocument(lib *library.Library, cfg config.Config, source string) (*build.BuildDocument, string, error) {
	switch {
	case source == "":
		doc, err := lib.LoadLast()
		return doc, "", err

	case fetch.IsURL(source):
		client := fetch.NewClient(time.Duration(cfg.FetchTimeoutSeconds) * time.Second)
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.FetchTimeoutSeconds)*time.Second)
		defer cancel()
		data, err := client.FromURL(ctx, source)
		if err != nil {
			return nil, "", err
		}
		doc, err := build.ParseDocument(data)
		return doc, "", err

	case looksLikeFile(source):
		data, err := fetch.FromFile(source)
		if err != nil {
			return nil, "", err
		}
		doc, err := build.ParseDocument(data)
		if err != nil {
			return nil, "", err
		}
		abs, absErr := filepath.Abs(source)
		if absErr != nil {
			abs = source
		}
		return doc, abs, nil

	default:
		doc, err := lib.Get(source)
		if err != nil {
			return nil, "", fmt.Errorf("no build %q in library (and no such file): %w", source, err)
		}
		return doc, "", nil
	}
}

// looksLikeFile reports whether source should be treated as a file path
// rather than a library id.
func looksLikeFile(source string) bool {
	if strings.ContainsAny(source, "/\\") || strings.HasSuffix(source, ".json") {
		return true
	}
	_, err := os.Stat(source)
	return err == nil
}

// openEmitter opens the session telemetry stream, or returns a nil (no-op)
// emitter when telemetry is disabled or the file cannot be opened.
func openEmitter(cfg config.Config, lib *library.Library) *telemetry.Emitter {
	if !cfg.Telemetry {
		return nil
	}
	emitter, err := telemetry.NewEmitter(filepath.Join(lib.Dir, "telemetry.jsonl"))
	if err != nil {
		return nil
	}
	return emitter
}
