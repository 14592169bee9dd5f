package answers

import (
	"errors"
	"fmt"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/fragment"
)

// ErrInvalidIndex is returned when a fragment or option index does not
// address an entry of the bank.
var ErrInvalidIndex = errors.New("invalid answer index")

// IndexError describes an out-of-range fragment or option index.
type IndexError struct {
	Fragment  int
	Option    int
	OptionDim bool // true when the option index was out of range
	Len       int  // length of the dimension that was out of range
}

func (e *IndexError) Error() string {
	if !e.OptionDim {
		return fmt.Sprintf("fragment %d out of range (bank has %d fragments)", e.Fragment, e.Len)
	}
	return fmt.Sprintf("option %d of fragment %d out of range (fragment has %d options)", e.Option, e.Fragment, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

// Bank maps each fragment index of the active sequence to its options.
type Bank struct {
	entries [][]Option
}

// NewBank returns a bank sized for seq.
func NewBank(seq fragment.Sequence) *Bank {
	b := &Bank{}
	b.InitializeFor(seq)
	return b
}

// InitializeFor resizes the bank to one empty list per fragment of seq.
// Any previous options are discarded.
func (b *Bank) InitializeFor(seq fragment.Sequence) {
	b.entries = make([][]Option, seq.Len())
}

// Len returns the number of fragment entries.
func (b *Bank) Len() int {
	return len(b.entries)
}

// Count returns the total number of options across all fragments.
func (b *Bank) Count() int {
	n := 0
	for _, opts := range b.entries {
		n += len(opts)
	}
	return n
}

// Options returns a copy of the options at fragment frag.
func (b *Bank) Options(frag int) ([]Option, error) {
	if err := b.checkFragment(frag); err != nil {
		return nil, err
	}
	out := make([]Option, len(b.entries[frag]))
	copy(out, b.entries[frag])
	return out, nil
}

// Add validates opt and appends it to fragment frag.
func (b *Bank) Add(frag int, opt Option) error {
	if err := b.checkFragment(frag); err != nil {
		return err
	}
	opt.normalize()
	if err := opt.Validate(); err != nil {
		return err
	}
	b.entries[frag] = append(b.entries[frag], opt)
	return nil
}

// Edit updates one option in place. The option is first marked as a
// question again, then mutate is applied. If the result fails validation
// the option is left as it was.
func (b *Bank) Edit(frag, opt int, mutate func(*Option)) error {
	if err := b.checkOption(frag, opt); err != nil {
		return err
	}
	edited := b.entries[frag][opt]
	edited.IsQuestion = true
	if mutate != nil {
		mutate(&edited)
	}
	edited.normalize()
	if err := edited.Validate(); err != nil {
		return err
	}
	b.entries[frag][opt] = edited
	return nil
}

// MarkNonQuestion turns an option into the literal-text sentinel.
func (b *Bank) MarkNonQuestion(frag, opt int) error {
	if err := b.checkOption(frag, opt); err != nil {
		return err
	}
	o := &b.entries[frag][opt]
	o.IsQuestion = false
	o.normalize()
	return nil
}

// Delete removes one option from fragment frag.
func (b *Bank) Delete(frag, opt int) error {
	if err := b.checkOption(frag, opt); err != nil {
		return err
	}
	opts := b.entries[frag]
	b.entries[frag] = append(opts[:opt:opt], opts[opt+1:]...)
	return nil
}

// Complete reports whether the first fragment has at least one option.
// This is the only gate for marking a sentence complete.
func (b *Bank) Complete() bool {
	return len(b.entries) > 0 && len(b.entries[0]) > 0
}

func (b *Bank) checkFragment(frag int) error {
	if frag < 0 || frag >= len(b.entries) {
		return &IndexError{Fragment: frag, Len: len(b.entries)}
	}
	return nil
}

func (b *Bank) checkOption(frag, opt int) error {
	if err := b.checkFragment(frag); err != nil {
		return err
	}
	if opt < 0 || opt >= len(b.entries[frag]) {
		return &IndexError{Fragment: frag, Option: opt, OptionDim: true, Len: len(b.entries[frag])}
	}
	return nil
}
