package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chris-regnier/moodtrack/internal/entry"
	"github.com/chris-regnier/moodtrack/internal/ui"
	"github.com/spf13/cobra"
)

var listRender bool

var listCmd = &cobra.Command{
	Use:       "list journal|diagnosis",
	Short:     "List saved rows in the order they were written",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"journal", "diagnosis"},
	Example: `  moodtrack list journal
  moodtrack list journal --render
  moodtrack list diagnosis --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(cmd.OutOrStdout(), args[0], listRender)
	},
}

func listRun(w io.Writer, kind string, render bool) error {
	var buf bytes.Buffer
	width := appConfig.MaxWidth
	theme := ui.ResolveTheme(appConfig.Theme)

	switch kind {
	case "journal":
		entries, err := store.ListJournal()
		if err != nil {
			return err
		}
		switch {
		case jsonOutput:
			if entries == nil {
				entries = []entry.JournalEntry{}
			}
			if err := ui.FormatJSON(&buf, entries); err != nil {
				return err
			}
		case render:
			ui.FormatJournalFull(&buf, entries, width, theme.MarkdownStyle)
		default:
			ui.FormatJournalList(&buf, entries)
		}
	case "diagnosis":
		entries, err := store.ListDiagnoses()
		if err != nil {
			return err
		}
		switch {
		case jsonOutput:
			if entries == nil {
				entries = []entry.DiagnosisEntry{}
			}
			if err := ui.FormatJSON(&buf, entries); err != nil {
				return err
			}
		case render:
			ui.FormatDiagnosisFull(&buf, entries, width, theme.MarkdownStyle)
		default:
			ui.FormatDiagnosisList(&buf, entries)
		}
	default:
		return fmt.Errorf("unknown table %q (use journal or diagnosis)", kind)
	}

	return ui.OutputOrPage(w, buf.String(), jsonOutput, appConfig.MaxWidth, theme)
}

func init() {
	listCmd.Flags().BoolVar(&listRender, "render", false, "render notes as Markdown")
	rootCmd.AddCommand(listCmd)
}
