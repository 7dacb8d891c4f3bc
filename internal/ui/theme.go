package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jinsoo1210/carrot/internal/config"
)

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

// Built-in presets.
var presets = map[string]Theme{
	"carrot": {
		Primary:       lipgloss.Color("#F4EDE4"),
		Secondary:     lipgloss.Color("#7A6A5C"),
		Accent:        lipgloss.Color("#FF8C1A"),
		Muted:         lipgloss.Color("#8C7B6B"),
		Danger:        lipgloss.Color("#E5484D"),
		Background:    lipgloss.Color("#1F1A17"),
		MarkdownStyle: "dark",
	},
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("33"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Background:    lipgloss.Color("235"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
	"carrot-light": {
		Primary:       lipgloss.Color("#2B211A"),
		Secondary:     lipgloss.Color("#9C8A7A"),
		Accent:        lipgloss.Color("#E06C00"),
		Muted:         lipgloss.Color("#A39282"),
		Danger:        lipgloss.Color("#C62828"),
		Background:    lipgloss.Color("#FFF8F0"),
		MarkdownStyle: "light",
	},
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	preset := cfg.Preset
	if preset == "" {
		preset = "default-dark"
	}

	theme, ok := presets[preset]
	if !ok {
		theme = presets["default-dark"]
	}

	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Secondary != "" {
		theme.Secondary = lipgloss.Color(cfg.Secondary)
	}
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Danger != "" {
		theme.Danger = lipgloss.Color(cfg.Danger)
	}
	if cfg.Background != "" {
		theme.Background = lipgloss.Color(cfg.Background)
	}
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}

	return theme
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Background(t.Background)
}

// HeaderStyle returns a lipgloss style for headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Background(t.Background)
}

// AccentStyle returns a lipgloss style for accented/focused elements.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background)
}

// DangerStyle returns a lipgloss style for warnings/delete prompts.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger).Background(t.Background)
}

// BorderStyle returns a lipgloss style with a rounded border using secondary color.
func (t Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		BorderBackground(t.Background).
		Background(t.Background).
		Foreground(t.Primary)
}

// bgEscapeCode returns the raw ANSI escape sequence to set the theme's
// background color, for use with terminal control codes like \x1b[K.
func (t Theme) bgEscapeCode() string {
	s := string(t.Background)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[48;5;" + s + "m"
}

// PaintScreen fills every line to termWidth (with optional centering) and pads
// vertically to termHeight, using the theme background color. Each line is
// padded with background-colored spaces AND a terminal-level \x1b[K (erase to
// end of line) as a safety net, ensuring the background fills the full terminal
// width even if lipgloss.Width measurement is slightly off.
func (t Theme) PaintScreen(content string, termWidth, termHeight, contentWidth int) string {
	bgPad := lipgloss.NewStyle().Background(t.Background)
	clearEOL := t.bgEscapeCode() + "\x1b[K"

	leftPad := 0
	if contentWidth > 0 && contentWidth < termWidth {
		leftPad = (termWidth - contentWidth) / 2
	}

	leftStr := ""
	if leftPad > 0 {
		leftStr = bgPad.Render(strings.Repeat(" ", leftPad))
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		rightPad := max(termWidth-leftPad-w, 0)

		var b strings.Builder
		if leftPad > 0 {
			b.WriteString(leftStr)
		}
		b.WriteString(line)
		if rightPad > 0 {
			b.WriteString(bgPad.Render(strings.Repeat(" ", rightPad)))
		}
		b.WriteString(clearEOL)
		lines[i] = b.String()
	}

	emptyLine := bgPad.Render(strings.Repeat(" ", termWidth)) + clearEOL
	for len(lines) < termHeight {
		lines = append(lines, emptyLine)
	}

	return strings.Join(lines[:termHeight], "\n")
}

// ClearLineEnds appends a terminal-level erase-to-end-of-line (\x1b[K) to
// every line, ensuring the theme background fills to the right terminal edge.
// Use this for output produced by lipgloss.Place or similar that may not
// extend to the full terminal width.
func (t Theme) ClearLineEnds(content string) string {
	clearEOL := t.bgEscapeCode() + "\x1b[K"
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = line + clearEOL
	}
	return strings.Join(lines, "\n")
}

// ViewPaneStyle returns a lipgloss style for content view panes with themed background.
func (t Theme) ViewPaneStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Background).
		Foreground(t.Primary)
}

// DayCellStyle returns the style of one calendar strip cell.
func (t Theme) DayCellStyle(width int, selected, today bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Background(t.Background).
		Foreground(t.Secondary)
	if today {
		s = s.Foreground(t.Primary).Bold(true)
	}
	if selected {
		s = s.Foreground(t.Background).Background(t.Accent).Bold(true)
	}
	return s
}

// TodoStyle returns the style of a todo row.
func (t Theme) TodoStyle(checked, focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.Primary).Background(t.Background)
	if checked {
		s = s.Foreground(t.Muted).Strikethrough(true)
	}
	if focused {
		s = s.Foreground(t.Accent)
	}
	return s
}
