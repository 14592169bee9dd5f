// Package config loads composer settings from a YAML file, a .env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/answers"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/logger"
)

const appName = "composer"

// Environment variables read by Load.
const (
	EnvConfig  = "COMPOSER_CONFIG"
	EnvOutput  = "COMPOSER_OUTPUT"
	EnvLogFile = "COMPOSER_LOG_FILE"
	EnvLogMode = "COMPOSER_LOG_MODE"
)

// Config is the complete composer configuration.
type Config struct {
	// Output is the path the Moodle XML export is written to.
	Output string `yaml:"output"`

	Export ExportConfig `yaml:"export"`

	// Feedback lists the preset feedback lines offered for new answers.
	Feedback []string `yaml:"feedback"`

	// Marks is the order marks are offered in when entering an answer.
	Marks []int `yaml:"marks"`

	Log LogConfig `yaml:"log"`
}

// ExportConfig controls the Moodle XML document around the questions.
type ExportConfig struct {
	// CategoryPrefix starts the category path (Moodle's "$course$").
	CategoryPrefix string `yaml:"category_prefix"`
	// Section is the category level between stage and exercise.
	Section string `yaml:"section"`
	// NumberBase is added to the 1-based question position.
	NumberBase int `yaml:"number_base"`
	FontFace   string `yaml:"font_face"`
	FontSize   int    `yaml:"font_size"`
}

// LogConfig configures the file logger.
type LogConfig struct {
	// File is the log destination. Empty disables logging.
	File string `yaml:"file"`
	// Mode is "dev" or "prod".
	Mode string `yaml:"mode"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Output: "./upload.xml",
		Export: ExportConfig{
			CategoryPrefix: "$course$",
			Section:        "Composition",
			NumberBase:     1000,
			FontFace:       "times new roman,times,serif",
			FontSize:       4,
		},
		Feedback: []string{
			"Try again!",
			"Well done!",
			"Look at your notes on nouns.",
			"Look at your notes on verbs.",
			"Look at your notes on adjectives.",
		},
		Marks: []int{0, 100, 75, 66, 50, 33, 25},
		Log: LogConfig{
			Mode: "dev",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if len(c.Marks) == 0 {
		return fmt.Errorf("marks must not be empty")
	}
	for _, m := range c.Marks {
		if !answers.ValidMark(m) {
			return fmt.Errorf("mark %d is not one of %v", m, answers.Marks)
		}
	}
	if c.Export.NumberBase < 0 {
		return fmt.Errorf("export.number_base must not be negative")
	}
	if c.Export.FontSize < 1 || c.Export.FontSize > 7 {
		return fmt.Errorf("export.font_size must be between 1 and 7")
	}
	if _, err := logger.ParseMode(c.Log.Mode); err != nil {
		return fmt.Errorf("log.mode: %w", err)
	}
	return nil
}

// LoadFile reads a YAML file over the defaults. A missing file is not an
// error.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves the config file, applies environment overrides and
// validates the result. flagPath takes priority over every other source.
func Load(flagPath string) (*Config, error) {
	// .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path := flagPath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvLogMode); v != "" {
		c.Log.Mode = v
	}
}

// DefaultPath resolves the config file path in priority order:
// 1. COMPOSER_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/composer/config.yaml
// 3. ~/.config/composer/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, "config.yaml"), nil
}
