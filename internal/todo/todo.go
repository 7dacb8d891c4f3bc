// Package todo holds the per-day todo lists for the lifetime of the process.
package todo

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/Jinsoo1210/carrot/internal/calendar"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8

	// MaxTitle is the longest title, in runes, an entry may carry.
	MaxTitle = 14
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

// Entry is a single todo item.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Checked   bool      `json:"checked" yaml:"checked"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NewID generates a new nanoid for an entry.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// ValidateID checks whether an ID matches the expected pattern.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid todo ID: %q (must be 8 lowercase alphanumeric characters)", id)
	}
	return nil
}

// ClampTitle trims title and cuts it to at most limit runes. The second
// result is false when nothing is left after trimming.
func ClampTitle(title string, limit int) (string, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}
	if limit > 0 {
		if r := []rune(title); len(r) > limit {
			title = string(r[:limit])
		}
	}
	return title, true
}

// Key returns the store key for the day t falls on.
func Key(t time.Time) string {
	return calendar.Normalize(t).Format(calendar.KeyLayout)
}
