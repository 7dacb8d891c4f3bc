package mcptools

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Jinsoo1210/carrot/internal/todo"
)

// SearchHandler returns the handler function for the search_todos MCP tool.
func SearchHandler(store *todo.Store) func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = 10
		}

		type scored struct {
			TodoResult
			score int
		}
		var hits []scored
		for _, key := range store.Days() {
			for _, m := range todo.Search(store.ListOn(key), input.Query) {
				hits = append(hits, scored{toResult(key, m.Entry), m.Score})
			}
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

		results := []TodoResult{}
		for _, h := range hits {
			results = append(results, h.TodoResult)
			if len(results) >= limit {
				break
			}
		}
		return nil, SearchOutput{Todos: results}, nil
	}
}
