package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/app"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/config"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/logger"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/screen"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
)

// runApp loads configuration, opens the log and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Output = out
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	return app.Run(&screen.Env{
		Bank:   sentence.NewBank(),
		Config: cfg,
		Log:    log,
	})
}

// loadConfig resolves the config file from --config, then COMPOSER_CONFIG,
// then the default XDG path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
