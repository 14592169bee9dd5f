package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/config"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/export"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "composer (devel)\n", execute(t, "version"))
}

func TestInspect(t *testing.T) {
	s, err := sentence.New("the god loves")
	require.NoError(t, err)
	s.BeginAnswers()
	require.NoError(t, s.Answers().Add(0, answers.Option{IsQuestion: true, Mark: 100, Answer: "ho theos", Feedback: "Well done!"}))
	require.NoError(t, s.Answers().Add(2, answers.NonQuestion("agapa")))
	require.NoError(t, s.MarkComplete())

	path := filepath.Join(t.TempDir(), "upload.xml")
	opts := export.OptionsFromConfig(config.DefaultConfig().Export, "3", "Sentences 1")
	_, err = export.WriteFile(path, []*sentence.Sentence{s}, opts)
	require.NoError(t, err)

	out := execute(t, "inspect", "--text", path)
	assert.Contains(t, out, "Category: $course$/3/Composition/Sentences_1")
	assert.Contains(t, out, "Sentences_1_q_1001")
	assert.Contains(t, out, "1 questions, 1 gaps")
	assert.True(t, strings.Contains(out, "SHORTANSWER"), "--text should print the question body")
}

func TestInspect_MissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"inspect", filepath.Join(t.TempDir(), "nope.xml")})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	assert.ErrorContains(t, rootCmd.Execute(), "open quiz")
}
