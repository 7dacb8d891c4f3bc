package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Jinsoo1210/carrot/internal/calendar"
	"github.com/Jinsoo1210/carrot/internal/todo"
)

// markdownRenderer is a cached glamour renderer instance
var markdownRenderer *glamour.TermRenderer

// cachedWidth and cachedStyle describe the current renderer
var (
	cachedWidth int
	cachedStyle string
)

// RenderMarkdown renders markdown content with the given glamour style,
// rebuilding the cached renderer when width or style change. The original
// content is returned if rendering fails.
func RenderMarkdown(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}

	if markdownRenderer == nil || width != cachedWidth || style != cachedStyle {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return content
		}
		markdownRenderer = renderer
		cachedWidth = width
		cachedStyle = style
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// infoMarkdown describes one todo for the info panel of the action sheet.
func infoMarkdown(e todo.Entry, day string, loc calendar.Locale) string {
	status := "open"
	if e.Checked {
		status = "done"
	}
	heading := day
	if t, err := calendar.ParseDay(day); err == nil {
		heading = loc.Heading(t)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", e.Title)
	fmt.Fprintf(&b, "- **Day:** %s\n", heading)
	fmt.Fprintf(&b, "- **Status:** %s\n", status)
	fmt.Fprintf(&b, "- **ID:** `%s`\n", e.ID)
	if !e.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- **Added:** %s\n", e.CreatedAt.Local().Format("15:04"))
	}
	return b.String()
}
