package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsMRSoL/greek-composition-question-writer/internal/export"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Summarize an exported Moodle XML quiz",
	Long:  "Lists the category and questions of a quiz file. Without an argument the configured output file is read.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path = cfg.Output
		}
		showText, _ := cmd.Flags().GetBool("text")

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open quiz: %w", err)
		}
		defer f.Close()

		sum, err := export.Inspect(f)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Category: %s\n\n", sum.Category)
		fmt.Fprintf(out, "%6s  %-40s  %-8s  %s\n", "No.", "Name", "Type", "Gaps")
		fmt.Fprintln(out, strings.Repeat("─", 66))

		for _, q := range sum.Questions {
			name := q.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			fmt.Fprintf(out, "%6d  %-40s  %-8s  %4d\n", q.Number, name, q.Type, q.Gaps)
			if showText {
				fmt.Fprintf(out, "        %s\n", q.Text)
			}
		}

		fmt.Fprintf(out, "\n%d questions, %d gaps\n", len(sum.Questions), sum.Gaps())
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("text", false, "Also print each question's text")
}
