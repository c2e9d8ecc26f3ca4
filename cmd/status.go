package cmd

import (
	"fmt"
	"io"
	"text/template"

	"github.com/chris-regnier/moodtrack/internal/ui"
	"github.com/spf13/cobra"
)

var statusFormat string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts and file locations",
	Long: `Show the storage backend, where the records live, and how many rows each
table holds.

Use --format with a Go template for custom output.`,
	Example: `  moodtrack status
  moodtrack status --json
  moodtrack status --format "{{.JournalCount}} entries, last {{.LastJournal}}"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusRun(cmd.OutOrStdout(), statusFormat)
	},
}

func statusRun(w io.Writer, format string) error {
	s, err := buildStatus()
	if err != nil {
		return err
	}

	switch {
	case jsonOutput:
		return ui.FormatJSON(w, s)
	case format != "":
		tmpl, err := template.New("status").Parse(format)
		if err != nil {
			return fmt.Errorf("invalid format template: %w", err)
		}
		if err := tmpl.Execute(w, s); err != nil {
			return fmt.Errorf("executing format template: %w", err)
		}
		fmt.Fprintln(w)
		return nil
	default:
		ui.FormatStatus(w, s)
		return nil
	}
}

func buildStatus() (ui.Status, error) {
	journal, err := store.ListJournal()
	if err != nil {
		return ui.Status{}, err
	}
	diagnoses, err := store.ListDiagnoses()
	if err != nil {
		return ui.Status{}, err
	}

	s := ui.Status{
		Storage:        appConfig.Storage,
		DataDir:        appConfig.DataDir,
		JournalCount:   len(journal),
		DiagnosisCount: len(diagnoses),
	}
	if s.Storage == "" || s.Storage == "csv" {
		s.Storage = "csv"
		s.JournalPath = appConfig.JournalPath()
		s.DiagnosisPath = appConfig.DiagnosisPath()
	}
	if n := len(journal); n > 0 {
		s.LastJournal = journal[n-1].Date
	}
	if n := len(diagnoses); n > 0 {
		s.LastDiagnosis = diagnoses[n-1].Date
	}
	return s, nil
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
