// Package selection owns the single selected calendar day and keeps it in
// step with the strip's window and scroll position.
package selection

import (
	"time"

	"github.com/Jinsoo1210/carrot/internal/calendar"
)

// ScrollCommand asks the render surface to bring Index into view at
// ViewPosition of the viewport (0.5 = centred).
type ScrollCommand struct {
	Index        int
	ViewPosition float64
	Animated     bool
}

// Selection is the selected day together with its virtual index.
type Selection struct {
	Date  time.Time
	Index int
}

// Key returns the "2006-01-02" key of the selected day.
func (s Selection) Key() string {
	return s.Date.Format(calendar.KeyLayout)
}

// Controller is the source of truth for the current date. Every successful
// selection grows the window to cover the index before the scroll command is
// returned, so the command never targets an unmaterialised cell.
type Controller struct {
	mapper       calendar.Mapper
	window       *calendar.Window
	current      Selection
	followScroll bool
	subs         []func(Selection)
}

// New returns a controller with today selected.
func New(mapper calendar.Mapper, window *calendar.Window) *Controller {
	c := &Controller{mapper: mapper, window: window}
	c.window.Ensure(calendar.Center)
	c.current = Selection{Date: mapper.DateOf(calendar.Center), Index: calendar.Center}
	return c
}

// Selected returns the current selection.
func (c *Controller) Selected() Selection {
	return c.current
}

// Key returns the current day's key. It lets the controller act as the key
// source of a todo.Store.
func (c *Controller) Key() string {
	return c.current.Key()
}

// Subscribe registers fn to be called after every selection change.
func (c *Controller) Subscribe(fn func(Selection)) {
	c.subs = append(c.subs, fn)
}

// SetFollowScroll enables or disables selecting the day under the viewport
// centre as the strip scrolls.
func (c *Controller) SetFollowScroll(on bool) {
	c.followScroll = on
}

// SelectByIndex selects the day at index i. It returns false and leaves the
// selection untouched when i lies outside the index domain.
func (c *Controller) SelectByIndex(i int) (ScrollCommand, bool) {
	if !c.mapper.Contains(i) {
		return ScrollCommand{}, false
	}
	c.window.Ensure(i)
	c.set(i)
	return ScrollCommand{Index: i, ViewPosition: 0.5, Animated: true}, true
}

// SelectDate selects the day d falls on.
func (c *Controller) SelectDate(d time.Time) (ScrollCommand, bool) {
	return c.SelectByIndex(c.mapper.IndexOf(d))
}

// Step moves the selection by delta days.
func (c *Controller) Step(delta int) (ScrollCommand, bool) {
	return c.SelectByIndex(c.current.Index + delta)
}

// GoToToday selects the anchor day.
func (c *Controller) GoToToday() ScrollCommand {
	cmd, _ := c.SelectByIndex(c.mapper.IndexOf(c.mapper.Today()))
	return cmd
}

// FollowScroll selects the materialised day under the viewport centre when
// follow mode is on. It reports whether the selection changed. No scroll
// command is produced since the scroll already happened.
func (c *Controller) FollowScroll(center int) bool {
	if !c.followScroll || !c.window.Contains(center) || center == c.current.Index {
		return false
	}
	c.set(center)
	return true
}

func (c *Controller) set(i int) {
	if i == c.current.Index {
		return
	}
	c.current = Selection{Date: c.mapper.DateOf(i), Index: i}
	for _, fn := range c.subs {
		fn(c.current)
	}
}
