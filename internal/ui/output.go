package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Jinsoo1210/carrot/internal/api"
	"github.com/Jinsoo1210/carrot/internal/calendar"
	"github.com/Jinsoo1210/carrot/internal/todo"
)

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DayAgenda is the JSON representation of one day's todos.
type DayAgenda struct {
	Date  string       `json:"date"`
	Done  int          `json:"done"`
	Todos []todo.Entry `json:"todos"`
}

// BuildAgenda summarises the todos of day key.
func BuildAgenda(key string, entries []todo.Entry) DayAgenda {
	a := DayAgenda{Date: key, Todos: entries}
	if a.Todos == nil {
		a.Todos = []todo.Entry{}
	}
	for _, e := range entries {
		if e.Checked {
			a.Done++
		}
	}
	return a
}

// FormatAgenda prints a day's todos as a checklist.
func FormatAgenda(w io.Writer, a DayAgenda, loc calendar.Locale) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	heading := a.Date
	if t, err := calendar.ParseDay(a.Date); err == nil {
		heading = loc.Heading(t) + "  " + loc.MonthYear(t)
	}
	fmt.Fprintln(w, bold.Sprint(heading))
	if len(a.Todos) == 0 {
		fmt.Fprintln(w, faint.Sprint("  nothing planned"))
		return
	}
	for _, e := range a.Todos {
		if e.Checked {
			fmt.Fprintln(w, faint.Sprintf("  [x] %s", e.Title))
			continue
		}
		fmt.Fprintf(w, "  [ ] %s\n", e.Title)
	}
	fmt.Fprintln(w, faint.Sprintf("  %d/%d done", a.Done, len(a.Todos)))
}

// FormatShopItems prints the shop catalogue as a table.
func FormatShopItems(w io.Writer, items []api.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "The shop is empty.")
		return
	}
	bold := color.New(color.Bold)
	price := color.New(color.FgHiYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Item"), bold.Sprint("Type"), bold.Sprint("Price"))
	for _, it := range items {
		tbl.AddRow(strconv.Itoa(it.ID), it.Name, it.Type, price.Sprintf("%d carrots", it.Price))
	}
	tbl.RightAlign(0)
	fmt.Fprintln(w, tbl)
}

// FormatPurchase prints the result of a purchase.
func FormatPurchase(w io.Writer, p api.Purchase) {
	msg := p.Message
	if msg == "" {
		msg = "Purchase complete."
	}
	fmt.Fprintln(w, color.New(color.FgGreen).Sprint(msg))
	fmt.Fprintf(w, "Balance: %d carrots\n", p.NewBalance)
}
