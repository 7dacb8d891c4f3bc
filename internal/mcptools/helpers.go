package mcptools

import (
	"time"

	"github.com/Jinsoo1210/carrot/internal/calendar"
	"github.com/Jinsoo1210/carrot/internal/todo"
)

// dayKey resolves an optional YYYY-MM-DD date to a store key.
func dayKey(s string) (string, error) {
	if s == "" {
		return todo.Key(time.Now()), nil
	}
	t, err := calendar.ParseDay(s)
	if err != nil {
		return "", err
	}
	return t.Format(calendar.KeyLayout), nil
}

func toResult(key string, e todo.Entry) TodoResult {
	return TodoResult{ID: e.ID, Title: e.Title, Checked: e.Checked, Date: key}
}
