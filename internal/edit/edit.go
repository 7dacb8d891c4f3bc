// Package edit coordinates the per-entry action sheet and inline editing.
package edit

import "time"

// Timer delays used by the home screen.
const (
	MountDelay = 150 * time.Millisecond // recentre the strip after first layout
	FocusDelay = 50 * time.Millisecond  // focus the input after entering Editing
)

// State is the coordinator's mode.
type State int

const (
	Idle State = iota
	Editing
	ActionOpen
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case ActionOpen:
		return "action"
	default:
		return "idle"
	}
}

// Action is a choice on the action sheet.
type Action int

const (
	ActionInfo Action = iota
	ActionEdit
	ActionDelete
	ActionCancel
)

// Actions lists the sheet's choices in display order.
var Actions = []Action{ActionInfo, ActionEdit, ActionDelete, ActionCancel}

func (a Action) String() string {
	switch a {
	case ActionInfo:
		return "info"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	default:
		return "cancel"
	}
}

// Remover deletes an entry from the current day.
type Remover interface {
	Remove(id string) bool
}

// FocusToken identifies one pending focus request. Only the latest token
// issued is ever honoured.
type FocusToken uint64

// Coordinator allows at most one entry to be in Editing or ActionOpen at a
// time. Starting a new action or edit implicitly cancels the previous one.
type Coordinator struct {
	remover  Remover
	state    State
	target   string
	showInfo bool
	token    FocusToken
}

// New returns an idle coordinator that deletes through r.
func New(r Remover) *Coordinator {
	return &Coordinator{remover: r}
}

func (c *Coordinator) State() State { return c.state }

// Target returns the entry being edited or inspected, if any.
func (c *Coordinator) Target() (string, bool) {
	if c.state == Idle {
		return "", false
	}
	return c.target, true
}

// Editing reports whether id is the entry being edited.
func (c *Coordinator) Editing(id string) bool {
	return c.state == Editing && c.target == id
}

// InfoVisible reports whether the info panel is open on the action sheet.
func (c *Coordinator) InfoVisible() bool {
	return c.state == ActionOpen && c.showInfo
}

// OpenActions opens the action sheet for id from any state.
func (c *Coordinator) OpenActions(id string) {
	c.transition(ActionOpen, id)
}

// BeginEdit enters Editing for id directly and returns the focus token to
// deliver once FocusDelay has elapsed.
func (c *Coordinator) BeginEdit(id string) FocusToken {
	c.transition(Editing, id)
	return c.token
}

// Choose applies action a to the open sheet. The returned token is non-zero
// only when the choice entered Editing. Choosing with no sheet open does
// nothing.
func (c *Coordinator) Choose(a Action) FocusToken {
	if c.state != ActionOpen {
		return 0
	}
	id := c.target
	switch a {
	case ActionInfo:
		c.showInfo = true
		return 0
	case ActionEdit:
		return c.BeginEdit(id)
	case ActionDelete:
		if c.remover != nil {
			c.remover.Remove(id)
		}
		c.transition(Idle, "")
		return 0
	default:
		c.transition(Idle, "")
		return 0
	}
}

// Blur leaves Editing when the input loses focus.
func (c *Coordinator) Blur() {
	if c.state == Editing {
		c.transition(Idle, "")
	}
}

// Reset returns to Idle from any state.
func (c *Coordinator) Reset() {
	if c.state != Idle {
		c.transition(Idle, "")
	}
}

// FocusDue reports whether a focus timer carrying tok should still apply.
func (c *Coordinator) FocusDue(tok FocusToken) bool {
	return tok != 0 && tok == c.token && c.state == Editing
}

// transition changes state and invalidates any outstanding focus token.
func (c *Coordinator) transition(s State, id string) {
	c.token++
	c.state = s
	c.target = id
	c.showInfo = false
}
