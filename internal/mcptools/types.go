package mcptools

import "github.com/chris-regnier/moodtrack/internal/entry"

// SaveJournalInput is the input schema for the save_journal_entry MCP tool.
type SaveJournalInput struct {
	Notes string `json:"notes" jsonschema-description:"Journal text for today"`
}

// SaveJournalOutput is the output schema for the save_journal_entry MCP tool.
type SaveJournalOutput struct {
	Entry entry.JournalEntry `json:"entry"`
}

// SaveDiagnosisInput is the input schema for the save_medical_diagnosis MCP tool.
type SaveDiagnosisInput struct {
	Diagnosis string `json:"diagnosis" jsonschema-description:"Diagnosis text for today"`
}

// SaveDiagnosisOutput is the output schema for the save_medical_diagnosis MCP tool.
type SaveDiagnosisOutput struct {
	Entry entry.DiagnosisEntry `json:"entry"`
}

// ListInput is the input schema for the list tools.
type ListInput struct {
	Limit int `json:"limit,omitempty" jsonschema-description:"Return only the last N rows (0 for all)"`
}

// ListJournalOutput is the output schema for the list_journal_entries MCP tool.
type ListJournalOutput struct {
	Entries []entry.JournalEntry `json:"entries"`
	Total   int                  `json:"total"`
}

// ListDiagnosesOutput is the output schema for the list_medical_diagnoses MCP tool.
type ListDiagnosesOutput struct {
	Entries []entry.DiagnosisEntry `json:"entries"`
	Total   int                    `json:"total"`
}
