package fragment

// Join merges fragment i with fragment i+1 and pushes the result.
func (h *History) Join(i int) error {
	cur := h.Active()
	if err := checkIndex(i, cur); err != nil {
		return err
	}
	if i+1 >= len(cur) {
		return ErrNoNextFragment
	}

	next := make(Sequence, 0, len(cur)-1)
	next = append(next, cur[:i]...)
	next = append(next, cur[i]+" "+cur[i+1])
	next = append(next, cur[i+2:]...)
	h.Push(next)
	return nil
}

// MoveEarlier swaps fragment i with the fragment before it and pushes the
// result.
func (h *History) MoveEarlier(i int) error {
	cur := h.Active()
	if err := checkIndex(i, cur); err != nil {
		return err
	}
	if i == 0 {
		return ErrAlreadyFirst
	}
	h.Push(swapped(cur, i-1))
	return nil
}

// MoveLater swaps fragment i with the fragment after it and pushes the
// result.
func (h *History) MoveLater(i int) error {
	cur := h.Active()
	if err := checkIndex(i, cur); err != nil {
		return err
	}
	if i+1 >= len(cur) {
		return ErrAlreadyLast
	}
	h.Push(swapped(cur, i))
	return nil
}

// swapped returns a copy of seq with fragments i and i+1 exchanged.
func swapped(seq Sequence, i int) Sequence {
	next := seq.Clone()
	next[i], next[i+1] = next[i+1], next[i]
	return next
}

func checkIndex(i int, seq Sequence) error {
	if i < 0 || i >= len(seq) {
		return &IndexError{Index: i, Len: len(seq)}
	}
	return nil
}
