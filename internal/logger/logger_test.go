package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoFileIsNop(t *testing.T) {
	l, err := New("dev", "")
	require.NoError(t, err)
	l.Info("discarded", "k", 1)
	l.Sync()
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "composer.log")

	l, err := New("prod", path)
	require.NoError(t, err)
	l.With("sentence", "abc").Info("fragments joined", "index", 2)
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fragments joined")
	assert.Contains(t, string(data), `"sentence":"abc"`)
	assert.Contains(t, string(data), `"index":2`)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		mode    string
		prod    bool
		wantErr bool
	}{
		{"", false, false},
		{"dev", false, false},
		{"development", false, false},
		{"prod", true, false},
		{"production", true, false},
		{"PROD", true, false},
		{"verbose", false, true},
	}
	for _, tt := range tests {
		prod, err := ParseMode(tt.mode)
		if tt.wantErr {
			assert.Error(t, err, "mode %q", tt.mode)
			continue
		}
		require.NoError(t, err, "mode %q", tt.mode)
		assert.Equal(t, tt.prod, prod, "mode %q", tt.mode)
	}
}

func TestNew_RejectsUnknownMode(t *testing.T) {
	_, err := New("verbose", filepath.Join(t.TempDir(), "composer.log"))
	require.Error(t, err)
}
