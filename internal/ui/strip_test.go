package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/Jinsoo1210/carrot/internal/calendar"
	"github.com/Jinsoo1210/carrot/internal/config"
)

func TestRenderStripFillsViewport(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "carrot"})
	mapper := calendar.NewMapper(time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local))

	for _, offset := range []int{0, 3, 7, 11} {
		w := calendar.NewWindow(calendar.Center, calendar.DefaultWindowOptions())
		w.SetViewport(60)
		w.CenterOn(calendar.Center, 0.5)
		w.ScrollBy(offset)

		out := renderStrip(w, mapper, calendar.Center, calendar.LocaleEnglish, theme)
		lines := strings.Split(out, "\n")
		if len(lines) != stripRows {
			t.Fatalf("offset %d: %d rows, want %d", offset, len(lines), stripRows)
		}
		for i, line := range lines {
			if got := ansi.StringWidth(line); got != 60 {
				t.Errorf("offset %d row %d: width %d, want 60", offset, i, got)
			}
		}
	}
}

func TestRenderStripMarksToday(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "carrot"})
	mapper := calendar.NewMapper(time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local))
	w := calendar.NewWindow(calendar.Center, calendar.DefaultWindowOptions())
	w.SetViewport(70)
	w.CenterOn(calendar.Center, 0.5)

	out := stripANSI(renderStrip(w, mapper, calendar.Center, calendar.LocaleKorean, theme))
	lines := strings.Split(out, "\n")

	if strings.Count(lines[2], todayDot) != 1 {
		t.Errorf("today row = %q, want one marker", lines[2])
	}
	if !strings.Contains(lines[0], "일") || !strings.Contains(lines[1], "10") {
		t.Errorf("strip = %q", out)
	}

	// Once today scrolls out of view the marker goes with it.
	w.CenterOn(calendar.Center+30, 0.5)
	out = stripANSI(renderStrip(w, mapper, calendar.Center+30, calendar.LocaleKorean, theme))
	if strings.Contains(out, todayDot) {
		t.Error("today marker drawn while today is off screen")
	}
}

func TestRenderStripNoViewport(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	w := calendar.NewWindow(calendar.Center, calendar.DefaultWindowOptions())
	if out := renderStrip(w, calendar.NewMapper(time.Now()), calendar.Center, calendar.LocaleEnglish, theme); out != "" {
		t.Errorf("renderStrip without a viewport = %q", out)
	}
}
