package screen

import (
	"github.com/jsMRSoL/greek-composition-question-writer/internal/config"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/logger"
	"github.com/jsMRSoL/greek-composition-question-writer/internal/sentence"
)

// Env is the state shared by every screen of one session.
type Env struct {
	Bank   *sentence.Bank
	Config *config.Config
	Log    *logger.Logger
}
