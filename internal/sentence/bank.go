package sentence

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition is returned for a bank position that holds no sentence.
	ErrInvalidPosition = errors.New("invalid sentence position")

	// ErrNoSuchMove is returned when moving the first sentence up or the
	// last one down.
	ErrNoSuchMove = errors.New("no such move")
)

// Bank is the ordered list of sentences being prepared for export.
type Bank struct {
	items []*Sentence
}

// NewBank returns an empty bank.
func NewBank() *Bank {
	return &Bank{}
}

// Add appends s and returns its position.
func (b *Bank) Add(s *Sentence) int {
	b.items = append(b.items, s)
	return len(b.items) - 1
}

// Len returns the number of sentences.
func (b *Bank) Len() int {
	return len(b.items)
}

// Get returns the sentence at position i.
func (b *Bank) Get(i int) (*Sentence, error) {
	if err := b.check(i); err != nil {
		return nil, err
	}
	return b.items[i], nil
}

// All returns the sentences in bank order.
func (b *Bank) All() []*Sentence {
	out := make([]*Sentence, len(b.items))
	copy(out, b.items)
	return out
}

// Remove deletes the sentence at position i.
func (b *Bank) Remove(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	return nil
}

// MoveUp swaps sentence i with the one before it.
func (b *Bank) MoveUp(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	if i == 0 {
		return ErrNoSuchMove
	}
	b.items[i-1], b.items[i] = b.items[i], b.items[i-1]
	return nil
}

// MoveDown swaps sentence i with the one after it.
func (b *Bank) MoveDown(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	if i == len(b.items)-1 {
		return ErrNoSuchMove
	}
	b.items[i], b.items[i+1] = b.items[i+1], b.items[i]
	return nil
}

// Clear removes every sentence.
func (b *Bank) Clear() {
	b.items = nil
}

// Completed returns the completed sentences in bank order.
func (b *Bank) Completed() []*Sentence {
	var out []*Sentence
	for _, s := range b.items {
		if s.Completed() {
			out = append(out, s)
		}
	}
	return out
}

// Stats returns the number of completed sentences and the bank size.
func (b *Bank) Stats() (done, total int) {
	for _, s := range b.items {
		if s.Completed() {
			done++
		}
	}
	return done, len(b.items)
}

func (b *Bank) check(i int) error {
	if i < 0 || i >= len(b.items) {
		return fmt.Errorf("%w: %d (bank has %d sentences)", ErrInvalidPosition, i, len(b.items))
	}
	return nil
}
