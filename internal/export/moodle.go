// Package export writes a sentence bank as a Moodle XML quiz and reads such
// files back for inspection.
package export

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/cloze"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/config"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
)

// Options describes one export. Stage and Exercise are supplied by the
// author at export time; the rest comes from configuration.
type Options struct {
	Stage          string `validate:"required"`
	Exercise       string `validate:"required"`
	CategoryPrefix string
	Section        string
	NumberBase     int `validate:"gte=0"`
	FontFace       string
	FontSize       int `validate:"gte=1,lte=7"`
}

// OptionsFromConfig fills the configured parts of Options.
func OptionsFromConfig(cfg config.ExportConfig, stage, exercise string) Options {
	return Options{
		Stage:          strings.TrimSpace(stage),
		Exercise:       strings.TrimSpace(exercise),
		CategoryPrefix: cfg.CategoryPrefix,
		Section:        cfg.Section,
		NumberBase:     cfg.NumberBase,
		FontFace:       cfg.FontFace,
		FontSize:       cfg.FontSize,
	}
}

// exerciseSlug is the exercise name with spaces replaced by underscores.
func (o Options) exerciseSlug() string {
	return strings.ReplaceAll(o.Exercise, " ", "_")
}

// Category returns the category path the questions are filed under.
func (o Options) Category() string {
	return fmt.Sprintf("%s/%s/%s/%s", o.CategoryPrefix, o.Stage, o.Section, o.exerciseSlug())
}

// QuestionName returns the internal Moodle name of question number n.
func (o Options) QuestionName(n int) string {
	return fmt.Sprintf("%s_q_%d", o.exerciseSlug(), n)
}

// Result summarizes a completed export.
type Result struct {
	Path      string
	Questions int
	Skipped   int   // incomplete sentences left out
	Stale     []int // 1-based positions of completed sentences whose answers no longer match their fragments
}

// CompileError identifies the sentence whose body could not be compiled.
type CompileError struct {
	Position int // 1-based position in the bank
	Sentence string
	Err      error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("sentence %d (%q): %v", e.Position, e.Sentence, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

var validate = validator.New()

type question struct {
	XMLName         xml.Name   `xml:"question"`
	Type            string     `xml:"type,attr"`
	Category        *plainText `xml:"category,omitempty"`
	Name            *plainText `xml:"name,omitempty"`
	QuestionText    *cdataText `xml:"questiontext,omitempty"`
	GeneralFeedback *plainText `xml:"generalfeedback,omitempty"`
	ShuffleAnswers  *int       `xml:"shuffleanswers,omitempty"`
}

type plainText struct {
	Text string `xml:"text"`
}

type cdataText struct {
	Text struct {
		Value string `xml:",cdata"`
	} `xml:"text"`
}

type compiled struct {
	number int
	s      *sentence.Sentence
	body   string
}

// Write encodes every completed sentence as a cloze question. A completed
// sentence whose answer bank no longer matches its fragments is left out
// and listed in Result.Stale. All bodies are compiled before anything is
// written, so any other compile error leaves w untouched.
func Write(w io.Writer, sentences []*sentence.Sentence, opts Options) (Result, error) {
	if err := validate.Struct(opts); err != nil {
		return Result{}, fmt.Errorf("export options: %w", err)
	}

	var res Result
	var items []compiled
	for i, s := range sentences {
		if !s.Completed() {
			res.Skipped++
			continue
		}
		body, err := s.Compile()
		if errors.Is(err, cloze.ErrBankMismatch) {
			res.Stale = append(res.Stale, i+1)
			continue
		}
		if err != nil {
			return Result{}, &CompileError{Position: i + 1, Sentence: s.Original, Err: err}
		}
		items = append(items, compiled{
			number: opts.NumberBase + len(items) + 1,
			s:      s,
			body:   body,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return Result{}, fmt.Errorf("write header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	quiz := xml.StartElement{Name: xml.Name{Local: "quiz"}}
	if err := enc.EncodeToken(quiz); err != nil {
		return Result{}, fmt.Errorf("write quiz: %w", err)
	}

	if err := enc.EncodeToken(xml.Comment(" question: 0 ")); err != nil {
		return Result{}, fmt.Errorf("write category: %w", err)
	}
	if err := enc.Encode(question{
		Type:     "category",
		Category: &plainText{Text: opts.Category()},
	}); err != nil {
		return Result{}, fmt.Errorf("write category: %w", err)
	}

	for _, it := range items {
		if err := enc.EncodeToken(xml.Comment(fmt.Sprintf(" question: %d ", it.number))); err != nil {
			return Result{}, fmt.Errorf("write question %d: %w", it.number, err)
		}
		if err := enc.Encode(clozeQuestion(it, opts)); err != nil {
			return Result{}, fmt.Errorf("write question %d: %w", it.number, err)
		}
		res.Questions++
	}

	if err := enc.EncodeToken(quiz.End()); err != nil {
		return Result{}, fmt.Errorf("write quiz end: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return Result{}, fmt.Errorf("flush: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return Result{}, fmt.Errorf("flush: %w", err)
	}
	return res, nil
}

func clozeQuestion(it compiled, opts Options) question {
	shuffle := 0
	q := question{
		Type:            "cloze",
		Name:            &plainText{Text: opts.QuestionName(it.number)},
		QuestionText:    &cdataText{},
		GeneralFeedback: &plainText{},
		ShuffleAnswers:  &shuffle,
	}
	q.QuestionText.Text.Value = fmt.Sprintf(
		"<p>%s</p>\n<p><font size=\"%s\" face=\"%s\">%s.</font></p>",
		it.s.Original, strconv.Itoa(opts.FontSize), opts.FontFace, it.body,
	)
	return q
}

// WriteFile exports to path. The file is written in place; if writing
// fails part way its contents are undefined. The sentences are not
// modified either way.
func WriteFile(path string, sentences []*sentence.Sentence, opts Options) (Result, error) {
	// Dry run first so bad options or a bad sentence do not truncate an
	// existing file.
	if _, err := Write(io.Discard, sentences, opts); err != nil {
		return Result{}, err
	}

	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)

	res, err := Write(bw, sentences, opts)
	if err != nil {
		f.Close()
		return Result{}, err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("close %s: %w", path, err)
	}

	res.Path = path
	return res, nil
}
