// Package store holds the in-memory item collection for one session.
package store

import (
	"slices"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// DefaultConfirmPrompt is asked before an item is removed.
const DefaultConfirmPrompt = "Really delete this item?"

// Store owns the ordered item collection and the id counter.
// Insertion order is display order. The zero value is not usable; call New.
type Store struct {
	nextID int
	items  []model.Item

	// Prompt is passed to the Confirmer on Remove.
	Prompt string
}

func New() *Store {
	return &Store{nextID: 1, Prompt: DefaultConfirmPrompt}
}

// Add appends a new active item. Blank text is ignored.
// It reports whether the collection changed.
func (s *Store) Add(raw string) bool {
	text := strings.TrimSpace(raw)
	if text == "" {
		return false
	}
	s.items = append(s.items, model.Item{ID: s.nextID, Text: text})
	s.nextID++
	return true
}

// Remove deletes the item with the given id once c confirms.
// A nil Confirmer declines.
func (s *Store) Remove(id int, c Confirmer) bool {
	if c == nil || !c.Confirm(s.Prompt) {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Toggle flips the completed flag.
func (s *Store) Toggle(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].Completed = !s.items[i].Completed
	return true
}

// Rename replaces the text of an item. Blank text and unknown ids leave
// the item as it was.
func (s *Store) Rename(id int, raw string) bool {
	text := strings.TrimSpace(raw)
	if text == "" {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].Text = text
	return true
}

func (s *Store) Counts() model.Counts {
	var c model.Counts
	c.All = len(s.items)
	for _, it := range s.items {
		if it.Completed {
			c.Completed++
		}
	}
	c.Active = c.All - c.Completed
	return c
}

// Items returns a copy of the collection in display order.
func (s *Store) Items() []model.Item {
	return slices.Clone(s.items)
}

func (s *Store) Get(id int) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

// Len is the number of items.
func (s *Store) Len() int { return len(s.items) }

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}
