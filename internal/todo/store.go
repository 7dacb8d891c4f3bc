package todo

import (
	"slices"
	"sync"
	"time"
)

// KeySource supplies the key of the currently selected day.
type KeySource interface {
	Key() string
}

// Option configures a Store.
type Option func(*Store)

// WithMaxTitle overrides the title clamp length.
func WithMaxTitle(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxTitle = n
		}
	}
}

// WithIDGenerator replaces the nanoid generator.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// Store maps day keys to ordered todo lists. Lists are created lazily and
// live only as long as the process.
//
// The implicit-scope methods (List, Add, Toggle, Rename, Remove) act on the
// key reported by the KeySource at call time. The *On variants take the key
// explicitly. A mutation only ever touches the list of the key it resolves.
type Store struct {
	mu       sync.Mutex
	src      KeySource
	days     map[string][]Entry
	issued   map[string]struct{}
	maxTitle int
	newID    func() (string, error)
	now      func() time.Time
}

// NewStore returns an empty store reading the current key from src. A nil
// src makes the implicit methods act on today.
func NewStore(src KeySource, opts ...Option) *Store {
	s := &Store{
		src:      src,
		days:     make(map[string][]Entry),
		issued:   make(map[string]struct{}),
		maxTitle: MaxTitle,
		newID:    NewID,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxTitle returns the clamp length applied to titles.
func (s *Store) MaxTitle() int {
	return s.maxTitle
}

// CurrentKey returns the key the implicit methods act on.
func (s *Store) CurrentKey() string {
	if s.src == nil {
		return Key(s.now())
	}
	return s.src.Key()
}

// Implicit-scope operations on CurrentKey.
func (s *Store) List() []Entry { return s.ListOn(s.CurrentKey()) }
func (s *Store) Add(title string) (Entry, bool) { return s.AddOn(s.CurrentKey(), title) }
func (s *Store) Toggle(id string) bool { return s.ToggleOn(s.CurrentKey(), id) }
func (s *Store) Rename(id, title string) bool { return s.RenameOn(s.CurrentKey(), id, title) }
func (s *Store) Remove(id string) bool { return s.RemoveOn(s.CurrentKey(), id) }
func (s *Store) Get(id string) (Entry, bool) { return s.GetOn(s.CurrentKey(), id) }

// ListOn returns a copy of key's entries in insertion order. Unknown keys
// yield an empty, non-nil slice.
func (s *Store) ListOn(key string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.days[key]))
	copy(out, s.days[key])
	return out
}

// GetOn returns the entry with id under key.
func (s *Store) GetOn(key, id string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(key, id); i >= 0 {
		return s.days[key][i], true
	}
	return Entry{}, false
}

// AddOn appends an unchecked entry to key. Titles are trimmed and clamped;
// a blank title is a no-op and reports false.
func (s *Store) AddOn(key, title string) (Entry, bool) {
	title, ok := ClampTitle(title, s.maxTitle)
	if !ok {
		return Entry{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.uniqueID()
	if err != nil {
		return Entry{}, false
	}
	e := Entry{ID: id, Title: title, CreatedAt: s.now()}
	s.days[key] = append(s.days[key], e)
	return e, true
}

// ToggleOn flips the checked flag of id under key.
func (s *Store) ToggleOn(key, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(key, id)
	if i < 0 {
		return false
	}
	s.days[key][i].Checked = !s.days[key][i].Checked
	return true
}

// RenameOn replaces the title of id under key, applying the same clamp as
// AddOn. A blank title leaves the entry unchanged.
func (s *Store) RenameOn(key, id, title string) bool {
	title, ok := ClampTitle(title, s.maxTitle)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(key, id)
	if i < 0 {
		return false
	}
	s.days[key][i].Title = title
	return true
}

// RemoveOn deletes id from key's list.
func (s *Store) RemoveOn(key, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(key, id)
	if i < 0 {
		return false
	}
	s.days[key] = slices.Delete(s.days[key], i, i+1)
	return true
}

// Days returns the sorted keys that currently hold at least one entry.
func (s *Store) Days() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.days))
	for k, entries := range s.days {
		if len(entries) > 0 {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

func (s *Store) find(key, id string) int {
	return slices.IndexFunc(s.days[key], func(e Entry) bool { return e.ID == id })
}

// uniqueID draws ids until one has never been issued by this store. Removed
// entries keep their ids reserved.
func (s *Store) uniqueID() (string, error) {
	for {
		id, err := s.newID()
		if err != nil {
			return "", err
		}
		if _, dup := s.issued[id]; !dup {
			s.issued[id] = struct{}{}
			return id, nil
		}
	}
}
