package sentence

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/cloze"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/fragment"
)

var (
	// ErrEmptySentence is returned for text with no words.
	ErrEmptySentence = errors.New("sentence has no words")

	// ErrNoAnswers is returned when marking a sentence complete while its
	// first fragment has no answers.
	ErrNoAnswers = errors.New("cannot mark complete: the first fragment has no answers")
)

// Sentence is one source sentence with its edit history and the answers
// for its active version. A Sentence is owned by a single editor at a time.
type Sentence struct {
	ID        uuid.UUID
	Original  string
	history   *fragment.History
	answers   *answers.Bank
	completed bool
}

// New splits text into its initial fragments.
func New(text string) (*Sentence, error) {
	text = strings.TrimSpace(text)
	if len(strings.Fields(text)) == 0 {
		return nil, ErrEmptySentence
	}
	h := fragment.NewHistory(text)
	return &Sentence{
		ID:       uuid.New(),
		Original: text,
		history:  h,
		answers:  answers.NewBank(h.Active()),
	}, nil
}

// Active returns the active fragment sequence.
func (s *Sentence) Active() fragment.Sequence {
	return s.history.Active()
}

// History exposes the version history for inspection.
func (s *Sentence) History() *fragment.History {
	return s.history
}

// Join merges fragment i with the next one.
func (s *Sentence) Join(i int) error {
	return s.history.Join(i)
}

// MoveEarlier swaps fragment i with the previous one.
func (s *Sentence) MoveEarlier(i int) error {
	return s.history.MoveEarlier(i)
}

// MoveLater swaps fragment i with the next one.
func (s *Sentence) MoveLater(i int) error {
	return s.history.MoveLater(i)
}

// Revert undoes the last edit.
func (s *Sentence) Revert() error {
	return s.history.Revert()
}

// Answers returns the answer bank of the active version.
func (s *Sentence) Answers() *answers.Bank {
	return s.answers
}

// PendingLoss returns the number of answers BeginAnswers would discard.
func (s *Sentence) PendingLoss() int {
	return s.answers.Count()
}

// Stale reports whether the answer bank was sized for a different version
// than the active one.
func (s *Sentence) Stale() bool {
	return s.answers.Len() != s.history.Active().Len()
}

// BeginAnswers starts answer assignment for the active version. The bank
// is re-created empty; answers from earlier versions are not migrated and
// the sentence is no longer complete.
func (s *Sentence) BeginAnswers() {
	s.answers.InitializeFor(s.history.Active())
	s.completed = false
}

// MarkComplete sets the completed flag if the first fragment has answers.
func (s *Sentence) MarkComplete() error {
	if !s.answers.Complete() {
		return ErrNoAnswers
	}
	s.completed = true
	return nil
}

// Completed reports the completed flag.
func (s *Sentence) Completed() bool {
	return s.completed
}

// Compile renders the question body of the active version.
func (s *Sentence) Compile() (string, error) {
	return cloze.Compile(s.history.Active(), s.answers)
}
