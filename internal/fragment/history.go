package fragment

// History is a linear undo stack of sequences. The active version is always
// the top of the stack; reverting discards it and it cannot be redone.
type History struct {
	versions []Sequence
	cursor   int
}

// NewHistory creates a history whose only version is the whitespace split
// of sentence.
func NewHistory(sentence string) *History {
	return &History{
		versions: []Sequence{Split(sentence)},
	}
}

// Push appends seq as the new active version. The caller guarantees seq is
// consistent with the edit that produced it.
func (h *History) Push(seq Sequence) {
	h.versions = append(h.versions, seq)
	h.cursor = len(h.versions) - 1
}

// Revert discards the active version. At the original split it returns
// ErrNothingToRevert and leaves the history unchanged.
func (h *History) Revert() error {
	if h.cursor == 0 {
		return ErrNothingToRevert
	}
	h.versions[h.cursor] = nil
	h.versions = h.versions[:h.cursor]
	h.cursor = len(h.versions) - 1
	return nil
}

// Active returns the top version.
func (h *History) Active() Sequence {
	return h.versions[h.cursor]
}

// Cursor returns the index of the active version.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of versions, including the original split.
func (h *History) Len() int {
	return len(h.versions)
}

// Version returns a copy of version i, or nil if i is out of range.
func (h *History) Version(i int) Sequence {
	if i < 0 || i >= len(h.versions) {
		return nil
	}
	return h.versions[i].Clone()
}
