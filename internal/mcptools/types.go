package mcptools

// DayInput selects a day. An empty date means today.
type DayInput struct {
	Date string `json:"date,omitempty" jsonschema-description:"Day as YYYY-MM-DD (default today)"`
}

// ListOutput is the output schema for the list_todos MCP tool.
type ListOutput struct {
	Date  string       `json:"date"`
	Todos []TodoResult `json:"todos"`
}

// TodoResult is the common output format for todo-related MCP tools.
type TodoResult struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Checked bool   `json:"checked"`
	Date    string `json:"date"`
}

// DaysOutput is the output schema for the list_days MCP tool.
type DaysOutput struct {
	Days []DaySummary `json:"days"`
}

// DaySummary counts the todos of one day.
type DaySummary struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
	Done  int    `json:"done"`
}

// SearchInput is the input schema for the search_todos MCP tool.
type SearchInput struct {
	Query string `json:"query" jsonschema-description:"Characters to fuzzy match against titles"`
	Limit int    `json:"limit" jsonschema-description:"Maximum number of results to return"`
}

// SearchOutput is the output schema for the search_todos MCP tool.
type SearchOutput struct {
	Todos []TodoResult `json:"todos"`
}

// AddInput is the input schema for the add_todo MCP tool.
type AddInput struct {
	Date  string `json:"date,omitempty" jsonschema-description:"Day as YYYY-MM-DD (default today)"`
	Title string `json:"title" jsonschema-description:"Todo title"`
}

// IDInput names one todo of a day.
type IDInput struct {
	Date string `json:"date,omitempty" jsonschema-description:"Day as YYYY-MM-DD (default today)"`
	ID   string `json:"id" jsonschema-description:"Todo ID"`
}

// RenameInput is the input schema for the rename_todo MCP tool.
type RenameInput struct {
	Date  string `json:"date,omitempty" jsonschema-description:"Day as YYYY-MM-DD (default today)"`
	ID    string `json:"id" jsonschema-description:"Todo ID"`
	Title string `json:"title" jsonschema-description:"New title"`
}

// ChangeOutput reports whether a write tool changed anything. Operations on
// an unknown id, or with a blank title, report changed=false.
type ChangeOutput struct {
	Changed bool        `json:"changed"`
	Todo    *TodoResult `json:"todo,omitempty"`
}
