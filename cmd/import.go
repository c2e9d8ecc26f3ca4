package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chris-regnier/moodtrack/internal/notes"
	"github.com/chris-regnier/moodtrack/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import FILE.md...",
	Short: "Append journal rows from Markdown notes",
	Long: `Append one journal row per Markdown file. Optional YAML front matter sets
the date (YYYY-MM-DD) and mood; a missing date means today and a missing mood
means "Neutral". Files with an empty body are skipped.`,
	Example: `  moodtrack import notes/2026-10-17.md notes/2026-10-18.md`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !importYes && !jsonOutput && term.IsTerminal(int(os.Stdin.Fd())) {
			prompt := fmt.Sprintf("Append %d note(s) to the journal?", len(args))
			ok, err := ui.Confirm(prompt, true, ui.ResolveTheme(appConfig.Theme))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Import cancelled.")
				return nil
			}
		}
		return importRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
}

// importResult is the JSON shape of an import run.
type importResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped"`
}

func importRun(w, errw io.Writer, paths []string) error {
	res := importResult{Skipped: []string{}}
	for _, path := range paths {
		if err := importFile(path); err != nil {
			fmt.Fprintf(errw, "Skipping %s: %v\n", path, err)
			logger.Warn().Err(err).Str("path", path).Msg("note not imported")
			res.Skipped = append(res.Skipped, filepath.Base(path))
			continue
		}
		res.Imported++
	}
	logger.Info().Int("imported", res.Imported).Int("skipped", len(res.Skipped)).Msg("import finished")

	if jsonOutput {
		if err := ui.FormatJSON(w, res); err != nil {
			return err
		}
	} else {
		ui.FormatImportSummary(w, res.Imported, res.Skipped)
	}
	if res.Imported == 0 {
		return fmt.Errorf("no notes imported")
	}
	return nil
}

func importFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	e, err := notes.Parse(f, clock.Now())
	if err != nil {
		return err
	}
	return store.AppendJournal(e)
}

func init() {
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)
}
