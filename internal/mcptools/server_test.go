package mcptools_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Jinsoo1210/carrot/internal/mcptools"
	"github.com/Jinsoo1210/carrot/internal/todo"
)

func connect(t *testing.T, store *todo.Store) *mcp.ClientSession {
	t.Helper()
	_, clientTransport := mcptools.NewTodoMCPServer(store)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args any, out any) {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s) failed: %v", name, err)
	}
	if result.IsError {
		t.Fatalf("CallTool(%s) returned a tool error: %+v", name, result.Content)
	}

	if result.StructuredContent != nil {
		outputJSON, _ := json.Marshal(result.StructuredContent)
		if err := json.Unmarshal(outputJSON, out); err != nil {
			t.Fatalf("failed to unmarshal structured content: %v", err)
		}
		return
	}
	if len(result.Content) == 0 {
		t.Fatal("expected content in result")
	}
	contentJSON, _ := json.Marshal(result.Content[0])
	var textContent struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(contentJSON, &textContent); err != nil {
		t.Fatalf("failed to unmarshal content: %v", err)
	}
	if err := json.Unmarshal([]byte(textContent.Text), out); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
}

func TestMCPServer_AddAndList(t *testing.T) {
	store := todo.NewStore(nil)
	session := connect(t, store)

	var added mcptools.ChangeOutput
	callTool(t, session, "add_todo", mcptools.AddInput{Date: "2024-03-10", Title: "Buy milk and bread"}, &added)
	if !added.Changed || added.Todo == nil {
		t.Fatalf("add_todo = %+v", added)
	}
	if added.Todo.Title != "Buy milk and b" {
		t.Errorf("title = %q, want clamped to 14", added.Todo.Title)
	}

	var list mcptools.ListOutput
	callTool(t, session, "list_todos", mcptools.DayInput{Date: "2024-03-10"}, &list)
	if len(list.Todos) != 1 || list.Todos[0].ID != added.Todo.ID {
		t.Errorf("list_todos = %+v", list)
	}

	var other mcptools.ListOutput
	callTool(t, session, "list_todos", mcptools.DayInput{Date: "2024-03-11"}, &other)
	if len(other.Todos) != 0 {
		t.Errorf("2024-03-11 = %+v, want empty", other.Todos)
	}
}

func TestMCPServer_BlankTitleIsNoOp(t *testing.T) {
	store := todo.NewStore(nil)
	session := connect(t, store)

	var out mcptools.ChangeOutput
	callTool(t, session, "add_todo", mcptools.AddInput{Date: "2024-03-10", Title: "   "}, &out)
	if out.Changed {
		t.Errorf("add_todo with blank title = %+v", out)
	}
	if got := store.ListOn("2024-03-10"); len(got) != 0 {
		t.Errorf("store changed: %+v", got)
	}
}

func TestMCPServer_ToggleRenameDelete(t *testing.T) {
	store := todo.NewStore(nil)
	e, _ := store.AddOn("2024-03-10", "stretch")
	keep, _ := store.AddOn("2024-03-10", "keep")
	session := connect(t, store)

	var out mcptools.ChangeOutput
	callTool(t, session, "toggle_todo", mcptools.IDInput{Date: "2024-03-10", ID: e.ID}, &out)
	if !out.Changed || out.Todo == nil || !out.Todo.Checked {
		t.Errorf("toggle_todo = %+v", out)
	}

	out = mcptools.ChangeOutput{}
	callTool(t, session, "rename_todo", mcptools.RenameInput{Date: "2024-03-10", ID: e.ID, Title: "yoga"}, &out)
	if !out.Changed || out.Todo.Title != "yoga" {
		t.Errorf("rename_todo = %+v", out)
	}

	out = mcptools.ChangeOutput{}
	callTool(t, session, "delete_todo", mcptools.IDInput{Date: "2024-03-11", ID: e.ID}, &out)
	if out.Changed {
		t.Error("delete_todo removed an entry from the wrong day")
	}

	callTool(t, session, "delete_todo", mcptools.IDInput{Date: "2024-03-10", ID: e.ID}, &out)
	if !out.Changed {
		t.Error("delete_todo did not report a change")
	}
	got := store.ListOn("2024-03-10")
	if len(got) != 1 || got[0].ID != keep.ID {
		t.Errorf("store = %+v, want only %s", got, keep.ID)
	}
}

func TestMCPServer_ListDays(t *testing.T) {
	store := todo.NewStore(nil)
	e, _ := store.AddOn("2024-03-10", "a")
	store.ToggleOn("2024-03-10", e.ID)
	store.AddOn("2024-03-10", "b")
	store.AddOn("2024-03-12", "c")
	session := connect(t, store)

	var out mcptools.DaysOutput
	callTool(t, session, "list_days", struct{}{}, &out)
	want := []mcptools.DaySummary{
		{Date: "2024-03-10", Total: 2, Done: 1},
		{Date: "2024-03-12", Total: 1, Done: 0},
	}
	if len(out.Days) != len(want) {
		t.Fatalf("list_days = %+v, want %+v", out.Days, want)
	}
	for i := range want {
		if out.Days[i] != want[i] {
			t.Errorf("day %d = %+v, want %+v", i, out.Days[i], want[i])
		}
	}
}

func TestMCPServer_SearchTodos(t *testing.T) {
	store := todo.NewStore(nil)
	store.AddOn("2024-03-10", "Buy milk")
	store.AddOn("2024-03-11", "Call mom")
	store.AddOn("2024-03-12", "Buy bread")
	session := connect(t, store)

	var out mcptools.SearchOutput
	callTool(t, session, "search_todos", mcptools.SearchInput{Query: "buy", Limit: 10}, &out)
	if len(out.Todos) != 2 {
		t.Fatalf("search_todos = %+v, want 2 hits", out.Todos)
	}
	for _, r := range out.Todos {
		if r.Date != "2024-03-10" && r.Date != "2024-03-12" {
			t.Errorf("unexpected hit %+v", r)
		}
	}
}

func TestMCPServer_InvalidDate(t *testing.T) {
	session := connect(t, todo.NewStore(nil))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_todos",
		Arguments: mcptools.DayInput{Date: "03/10/2024"},
	})
	if err == nil && (result == nil || !result.IsError) {
		t.Error("expected an error for a malformed date")
	}
}
