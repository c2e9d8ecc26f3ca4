package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/chris-regnier/moodtrack/internal/daily"
	"github.com/chris-regnier/moodtrack/internal/entry"
	"github.com/chris-regnier/moodtrack/internal/ui"
	"github.com/spf13/cobra"
)

var journalEdit bool

// clock is swapped by tests.
var clock daily.Clock

var journalCmd = &cobra.Command{
	Use:   "journal [text...]",
	Short: "Save today's mood journal entry",
	Long: `Append a row to the mood journal dated today with the mood "Neutral".

Text comes from the arguments, from stdin with "-", or from $EDITOR with --edit.`,
	Example: `  moodtrack journal "Felt okay today"
  echo "slept badly" | moodtrack journal -
  moodtrack journal --edit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readEntryText(args, journalEdit, "Write your journal entry above. Lines from the marker down are ignored.")
		if err != nil {
			return err
		}
		return journalRun(cmd.OutOrStdout(), text)
	},
}

func journalRun(w io.Writer, text string) error {
	e, err := daily.SaveJournal(store, text, clock)
	if errors.Is(err, entry.ErrEmptyText) {
		return fmt.Errorf("journal entry is empty")
	}
	if err != nil {
		logger.Error().Err(err).Msg("journal save failed")
		return err
	}
	logger.Info().Str("date", e.Date).Str("source", "cli").Msg("journal entry saved")

	if jsonOutput {
		return ui.FormatJSON(w, e)
	}
	ui.FormatJournalSaved(w, e)
	return nil
}

func init() {
	journalCmd.Flags().BoolVarP(&journalEdit, "edit", "e", false, "compose the entry in $EDITOR")
	rootCmd.AddCommand(journalCmd)
}
