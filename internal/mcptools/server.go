package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Jinsoo1210/carrot/internal/todo"
)

// NewTodoMCPServer creates an in-memory MCP server exposing todo tools.
// Returns the server and a client transport for connecting to it.
func NewTodoMCPServer(store *todo.Store) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, "dev")

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered todo tools.
func CreateMCPServer(store *todo.Store, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "carrot",
		Version: version,
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_todos",
		Description: "List the todos of one day (YYYY-MM-DD, default today)",
	}, ListHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_days",
		Description: "List the days that have at least one todo",
	}, DaysHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_todos",
		Description: "Fuzzy search todo titles across all days",
	}, SearchHandler(store))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_todo",
		Description: "Add a todo to a day; titles are trimmed and cut to the maximum length",
	}, AddHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_todo",
		Description: "Flip the checked state of a todo",
	}, ToggleHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_todo",
		Description: "Change the title of a todo",
	}, RenameHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_todo",
		Description: "Delete a todo from a day",
	}, DeleteHandler(store))

	return server
}
