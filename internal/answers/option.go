package answers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NotAQuestion is the feedback carried by options that mark a fragment as
// literal text rather than a gap.
const NotAQuestion = "###Not a question###"

// Marks lists the percentages an option may award.
var Marks = []int{0, 25, 33, 50, 66, 75, 100}

// Option is one accepted answer for a fragment.
//
// When IsQuestion is false the option is a sentinel: the fragment is
// rendered as the literal Answer text, Mark is 0 and Feedback is
// NotAQuestion.
type Option struct {
	IsQuestion bool
	Mark       int `validate:"oneof=0 25 33 50 66 75 100"`
	Answer     string
	Feedback   string
}

// NonQuestion returns a literal-text option for answer.
func NonQuestion(answer string) Option {
	return Option{Answer: answer, Feedback: NotAQuestion}
}

// normalize forces the sentinel fields of a non-question option.
func (o *Option) normalize() {
	if !o.IsQuestion {
		o.Mark = 0
		o.Feedback = NotAQuestion
	}
}

var validate = validator.New()

// Validate checks the option's mark. Any answer text is accepted,
// including an empty one.
func (o Option) Validate() error {
	if err := validate.Struct(o); err != nil {
		return &InvalidOptionError{Option: o, Err: err}
	}
	return nil
}

// ValidMark reports whether mark is one of Marks.
func ValidMark(mark int) bool {
	return validate.Var(mark, "oneof=0 25 33 50 66 75 100") == nil
}

// InvalidOptionError reports an option rejected by validation.
type InvalidOptionError struct {
	Option Option
	Err    error
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid answer option %q (mark %d): %v", e.Option.Answer, e.Option.Mark, e.Err)
}

func (e *InvalidOptionError) Unwrap() error { return e.Err }
