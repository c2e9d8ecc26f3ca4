package mcptools

import (
	"context"

	"github.com/chris-regnier/moodtrack/internal/daily"
	"github.com/chris-regnier/moodtrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

// Options configures the tool handlers.
type Options struct {
	Clock  daily.Clock    // nil means time.Now
	Logger zerolog.Logger // tool calls are logged here
}

// NewMoodMCPServer creates an in-memory MCP server exposing the mood tools.
// Returns the server and a client transport for connecting to it.
func NewMoodMCPServer(store storage.Storage, opts Options) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, opts)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the journal and diagnosis tools
// registered.
func CreateMCPServer(store storage.Storage, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "moodtrack",
		Version: Version,
	}, nil)

	log := opts.Logger.With().Str("component", "mcp").Logger()

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_journal_entry",
		Description: "Append today's mood journal entry (mood is recorded as Neutral)",
	}, SaveJournalHandler(store, opts.Clock, log))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_medical_diagnosis",
		Description: "Append today's medical diagnosis note",
	}, SaveDiagnosisHandler(store, opts.Clock, log))

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_journal_entries",
		Description: "List mood journal entries in the order they were written",
	}, ListJournalHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_medical_diagnoses",
		Description: "List medical diagnosis notes in the order they were written",
	}, ListDiagnosesHandler(store))

	return server
}
