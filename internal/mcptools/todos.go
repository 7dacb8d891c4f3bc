package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Jinsoo1210/carrot/internal/todo"
)

// ListHandler returns the handler function for the list_todos MCP tool.
func ListHandler(store *todo.Store) func(ctx context.Context, req *mcp.CallToolRequest, input DayInput) (*mcp.CallToolResult, ListOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DayInput) (*mcp.CallToolResult, ListOutput, error) {
		key, err := dayKey(input.Date)
		if err != nil {
			return nil, ListOutput{}, err
		}
		out := ListOutput{Date: key, Todos: []TodoResult{}}
		for _, e := range store.ListOn(key) {
			out.Todos = append(out.Todos, toResult(key, e))
		}
		return nil, out, nil
	}
}

// DaysHandler returns the handler function for the list_days MCP tool.
func DaysHandler(store *todo.Store) func(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, DaysOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, DaysOutput, error) {
		out := DaysOutput{Days: []DaySummary{}}
		for _, key := range store.Days() {
			s := DaySummary{Date: key}
			for _, e := range store.ListOn(key) {
				s.Total++
				if e.Checked {
					s.Done++
				}
			}
			out.Days = append(out.Days, s)
		}
		return nil, out, nil
	}
}

// AddHandler returns the handler function for the add_todo MCP tool.
func AddHandler(store *todo.Store) func(ctx context.Context, req *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, ChangeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, ChangeOutput, error) {
		key, err := dayKey(input.Date)
		if err != nil {
			return nil, ChangeOutput{}, err
		}
		e, ok := store.AddOn(key, input.Title)
		if !ok {
			return nil, ChangeOutput{}, nil
		}
		r := toResult(key, e)
		return nil, ChangeOutput{Changed: true, Todo: &r}, nil
	}
}

// ToggleHandler returns the handler function for the toggle_todo MCP tool.
func ToggleHandler(store *todo.Store) func(ctx context.Context, req *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, ChangeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, ChangeOutput, error) {
		key, err := dayKey(input.Date)
		if err != nil {
			return nil, ChangeOutput{}, err
		}
		if !store.ToggleOn(key, input.ID) {
			return nil, ChangeOutput{}, nil
		}
		return nil, changed(store, key, input.ID), nil
	}
}

// RenameHandler returns the handler function for the rename_todo MCP tool.
func RenameHandler(store *todo.Store) func(ctx context.Context, req *mcp.CallToolRequest, input RenameInput) (*mcp.CallToolResult, ChangeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RenameInput) (*mcp.CallToolResult, ChangeOutput, error) {
		key, err := dayKey(input.Date)
		if err != nil {
			return nil, ChangeOutput{}, err
		}
		if !store.RenameOn(key, input.ID, input.Title) {
			return nil, ChangeOutput{}, nil
		}
		return nil, changed(store, key, input.ID), nil
	}
}

// DeleteHandler returns the handler function for the delete_todo MCP tool.
func DeleteHandler(store *todo.Store) func(ctx context.Context, req *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, ChangeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, ChangeOutput, error) {
		key, err := dayKey(input.Date)
		if err != nil {
			return nil, ChangeOutput{}, err
		}
		return nil, ChangeOutput{Changed: store.RemoveOn(key, input.ID)}, nil
	}
}

func changed(store *todo.Store, key, id string) ChangeOutput {
	e, ok := store.GetOn(key, id)
	if !ok {
		return ChangeOutput{Changed: true}
	}
	r := toResult(key, e)
	return ChangeOutput{Changed: true, Todo: &r}
}
