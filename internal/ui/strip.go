package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Jinsoo1210/carrot/internal/calendar"
)

// stripRows is the height of the calendar strip: weekday, day of month and
// the today marker.
const stripRows = 3

const todayDot = "•"

// renderStrip draws the visible part of the window. Cells are laid out from
// the first visible index and cut to the viewport, so partially scrolled
// cells at either edge are drawn partially.
func renderStrip(w *calendar.Window, m calendar.Mapper, selected int, loc calendar.Locale, theme Theme) string {
	if w.Viewport() <= 0 {
		return ""
	}
	first, last := w.Visible()
	iw := w.ItemWidth()

	var rows [stripRows]strings.Builder
	for i := first; i <= last; i++ {
		d := m.DateOf(i)
		today := m.IsToday(i)
		style := theme.DayCellStyle(iw, i == selected, today)

		mark := ""
		if today {
			mark = todayDot
		}
		rows[0].WriteString(style.Render(loc.Weekday(d)))
		rows[1].WriteString(style.Render(strconv.Itoa(d.Day())))
		rows[2].WriteString(style.Render(mark))
	}

	left := -w.Column(first)
	right := left + w.Viewport()
	lines := make([]string, stripRows)
	for r := range rows {
		lines[r] = ansi.Cut(rows[r].String(), left, right)
	}
	return strings.Join(lines, "\n")
}
