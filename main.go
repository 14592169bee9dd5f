package main

import (
	"os"

	"github.com/jsMRSoL/greek-composition-question-writer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
