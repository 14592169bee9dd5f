// Package cloze renders a fragment sequence and its answer bank as a Moodle
// embedded-answers (cloze) question body.
//
// Gap token format:
//
//	{1:SHORTANSWER:~%<mark>%<answer>#<feedback>...}
//
// Answer and feedback text is inserted verbatim. The characters ~ % # and }
// are delimiters of the format and are not escaped.
package cloze

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/fragment"
)

const (
	gapOpen  = "{1:SHORTANSWER:"
	gapClose = "}"
)

// ErrBankMismatch is returned when the answer bank was sized for a
// different version of the sentence than the one being compiled.
var ErrBankMismatch = errors.New("answer bank does not match fragment sequence")

// MismatchError carries the two lengths that disagreed.
type MismatchError struct {
	Fragments int
	Entries   int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %d fragments, %d answer entries", ErrBankMismatch, e.Fragments, e.Entries)
}

func (e *MismatchError) Unwrap() error { return ErrBankMismatch }

// Compile renders every fragment of seq from its options in bank and joins
// the non-empty renderings with single spaces.
func Compile(seq fragment.Sequence, bank *answers.Bank) (string, error) {
	if bank == nil || bank.Len() != seq.Len() {
		entries := 0
		if bank != nil {
			entries = bank.Len()
		}
		return "", &MismatchError{Fragments: seq.Len(), Entries: entries}
	}

	parts := make([]string, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		binding, err := bank.Binding(i)
		if err != nil {
			return "", err
		}
		switch binding.Kind {
		case answers.BindingGap:
			parts = append(parts, Gap(binding.Options))
		case answers.BindingLiteral:
			parts = append(parts, binding.Literal)
		}
	}
	return strings.Join(parts, " "), nil
}

// Gap renders opts as a single short-answer gap, one weighted alternative
// per option in list order. Marks are emitted as given.
func Gap(opts []answers.Option) string {
	var b strings.Builder
	b.WriteString(gapOpen)
	for _, o := range opts {
		b.WriteString("~%")
		b.WriteString(strconv.Itoa(o.Mark))
		b.WriteString("%")
		b.WriteString(o.Answer)
		b.WriteString("#")
		b.WriteString(o.Feedback)
	}
	b.WriteString(gapClose)
	return b.String()
}

// CountGaps returns the number of gap tokens in a compiled body.
func CountGaps(body string) int {
	return strings.Count(body, gapOpen)
}
