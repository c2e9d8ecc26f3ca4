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

var diagnosisEdit bool

var diagnosisCmd = &cobra.Command{
	Use:     "diagnosis [text...]",
	Aliases: []string{"medical"},
	Short:   "Save today's medical diagnosis note",
	Example: `  moodtrack diagnosis "Mild asthma"
  moodtrack diagnosis --edit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readEntryText(args, diagnosisEdit, "Write the diagnosis above. Lines from the marker down are ignored.")
		if err != nil {
			return err
		}
		return diagnosisRun(cmd.OutOrStdout(), text)
	},
}

func diagnosisRun(w io.Writer, text string) error {
	d, err := daily.SaveDiagnosis(store, text, clock)
	if errors.Is(err, entry.ErrEmptyText) {
		return fmt.Errorf("medical diagnosis entry is empty")
	}
	if err != nil {
		logger.Error().Err(err).Msg("diagnosis save failed")
		return err
	}
	logger.Info().Str("date", d.Date).Str("source", "cli").Msg("medical diagnosis saved")

	if jsonOutput {
		return ui.FormatJSON(w, d)
	}
	ui.FormatDiagnosisSaved(w, d)
	return nil
}

func init() {
	diagnosisCmd.Flags().BoolVarP(&diagnosisEdit, "edit", "e", false, "compose the note in $EDITOR")
	rootCmd.AddCommand(diagnosisCmd)
}
