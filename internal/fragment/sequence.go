package fragment

import "strings"

// Sequence is an ordered list of sentence fragments. A Sequence is never
// modified after it has been pushed onto a History; edits build a new one.
type Sequence []string

// Split builds the initial sequence of a sentence by splitting on whitespace.
func Split(sentence string) Sequence {
	return Sequence(strings.Fields(sentence))
}

// Len returns the number of fragments.
func (s Sequence) Len() int {
	return len(s)
}

// At returns fragment i, or "" if i is out of range.
func (s Sequence) At(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// Clone returns a copy that shares no backing array with s.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Equal reports whether both sequences hold the same fragments in order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String joins the fragments with single spaces.
func (s Sequence) String() string {
	return strings.Join(s, " ")
}
