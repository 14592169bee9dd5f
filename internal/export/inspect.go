package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/cloze"
)

// Summary describes the contents of an exported quiz file.
type Summary struct {
	Category  string
	Questions []QuestionInfo
}

// QuestionInfo describes one question of an exported quiz.
type QuestionInfo struct {
	Number int // parsed from the name suffix, 0 if absent
	Name   string
	Type   string
	Text   string
	Gaps   int
}

// Gaps returns the total number of gaps across all questions.
func (s *Summary) Gaps() int {
	n := 0
	for _, q := range s.Questions {
		n += q.Gaps
	}
	return n
}

// Inspect parses a Moodle XML quiz.
func Inspect(r io.Reader) (*Summary, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse quiz: %w", err)
	}

	if xmlquery.FindOne(doc, "/quiz") == nil {
		return nil, fmt.Errorf("parse quiz: no <quiz> root element")
	}

	sum := &Summary{}
	if cat := xmlquery.FindOne(doc, "/quiz/question[@type='category']/category/text"); cat != nil {
		sum.Category = strings.TrimSpace(cat.InnerText())
	}

	nodes, err := xmlquery.QueryAll(doc, "/quiz/question[@type!='category']")
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	for _, n := range nodes {
		info := QuestionInfo{Type: n.SelectAttr("type")}
		if name := xmlquery.FindOne(n, "name/text"); name != nil {
			info.Name = strings.TrimSpace(name.InnerText())
			info.Number = trailingNumber(info.Name)
		}
		if text := xmlquery.FindOne(n, "questiontext/text"); text != nil {
			info.Text = strings.TrimSpace(text.InnerText())
			info.Gaps = cloze.CountGaps(info.Text)
		}
		sum.Questions = append(sum.Questions, info)
	}
	return sum, nil
}

func trailingNumber(name string) int {
	i := strings.LastIndex(name, "_")
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return 0
	}
	return n
}
