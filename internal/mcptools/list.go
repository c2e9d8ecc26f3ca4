package mcptools

import (
	"context"

	"github.com/chris-regnier/moodtrack/internal/entry"
	"github.com/chris-regnier/moodtrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListJournalHandler returns the handler function for the list_journal_entries MCP tool.
func ListJournalHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListJournalOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListJournalOutput, error) {
		entries, err := store.ListJournal()
		if err != nil {
			return nil, ListJournalOutput{}, err
		}
		if entries == nil {
			entries = []entry.JournalEntry{}
		}
		return nil, ListJournalOutput{Entries: lastN(entries, input.Limit), Total: len(entries)}, nil
	}
}

// ListDiagnosesHandler returns the handler function for the list_medical_diagnoses MCP tool.
func ListDiagnosesHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListDiagnosesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListDiagnosesOutput, error) {
		entries, err := store.ListDiagnoses()
		if err != nil {
			return nil, ListDiagnosesOutput{}, err
		}
		if entries == nil {
			entries = []entry.DiagnosisEntry{}
		}
		return nil, ListDiagnosesOutput{Entries: lastN(entries, input.Limit), Total: len(entries)}, nil
	}
}

// lastN keeps the final n rows, preserving their order. n <= 0 keeps all.
func lastN[T any](rows []T, n int) []T {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[len(rows)-n:]
}
