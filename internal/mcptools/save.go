package mcptools

import (
	"context"

	"github.com/chris-regnier/moodtrack/internal/daily"
	"github.com/chris-regnier/moodtrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// SaveJournalHandler returns the handler function for the save_journal_entry MCP tool.
func SaveJournalHandler(store storage.Storage, clock daily.Clock, log zerolog.Logger) func(ctx context.Context, req *mcp.CallToolRequest, input SaveJournalInput) (*mcp.CallToolResult, SaveJournalOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SaveJournalInput) (*mcp.CallToolResult, SaveJournalOutput, error) {
		e, err := daily.SaveJournal(store, input.Notes, clock)
		if err != nil {
			log.Warn().Err(err).Str("tool", "save_journal_entry").Msg("save rejected")
			return nil, SaveJournalOutput{}, err
		}
		log.Info().Str("tool", "save_journal_entry").Str("date", e.Date).Msg("journal entry saved")
		return nil, SaveJournalOutput{Entry: e}, nil
	}
}

// SaveDiagnosisHandler returns the handler function for the save_medical_diagnosis MCP tool.
func SaveDiagnosisHandler(store storage.Storage, clock daily.Clock, log zerolog.Logger) func(ctx context.Context, req *mcp.CallToolRequest, input SaveDiagnosisInput) (*mcp.CallToolResult, SaveDiagnosisOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SaveDiagnosisInput) (*mcp.CallToolResult, SaveDiagnosisOutput, error) {
		d, err := daily.SaveDiagnosis(store, input.Diagnosis, clock)
		if err != nil {
			log.Warn().Err(err).Str("tool", "save_medical_diagnosis").Msg("save rejected")
			return nil, SaveDiagnosisOutput{}, err
		}
		log.Info().Str("tool", "save_medical_diagnosis").Str("date", d.Date).Msg("medical diagnosis saved")
		return nil, SaveDiagnosisOutput{Entry: d}, nil
	}
}
