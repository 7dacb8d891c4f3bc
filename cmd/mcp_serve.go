package cmd

import (
	"context"
	"os"
	"time"

	"github.com/Jinsoo1210/carrot/internal/checklist"
	"github.com/Jinsoo1210/carrot/internal/logs"
	"github.com/Jinsoo1210/carrot/internal/mcptools"
	"github.com/Jinsoo1210/carrot/internal/todo"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpSeedFile string

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the todo store
over stdio transport. Todos live for as long as the server process runs;
--seed pre-loads them from a markdown checklist.

Available tools:
  - list_todos: List the todos of a day
  - add_todo: Add a todo to a day
  - toggle_todo: Flip a todo between open and done
  - rename_todo: Change a todo's title
  - delete_todo: Remove a todo
  - list_days: List the days that have todos
  - search_todos: Fuzzy search over todo titles

Example usage in an MCP client config:
  {
    "mcpServers": {
      "carrot": {
        "command": "/path/to/carrot",
        "args": ["mcp-serve"]
      }
    }
  }`,
	// Needs config only: no token store, and the log goes to stderr.
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		// Log to stderr (stdout is reserved for MCP protocol)
		logs.SetOutput(os.Stderr)
		return nil
	},
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpSeedFile, "seed", "", "markdown checklist to pre-load")
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	store := todo.NewStore(nil, todo.WithMaxTitle(appConfig.Todo.MaxTitle))
	seed, err := loadSeed(mcpSeedFile, time.Now())
	if err != nil {
		return err
	}
	n := checklist.Apply(store, seed)

	server := mcptools.CreateMCPServer(store, version)

	logs.Logger.Printf("Starting carrot MCP server (stdio transport)")
	logs.Logger.Printf("Seeded todos: %d", n)

	// Run server with stdio transport
	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
