package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "composer",
	Short: "Write Greek composition sentences as Moodle cloze questions",
	Long: "Composer — terminal editor that splits English sentences into fragments, " +
		"attaches accepted Greek answers to each fragment and prints the set as a Moodle XML quiz.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file (overrides COMPOSER_CONFIG env var)")
	rootCmd.Flags().StringP("output", "o", "", "Path of the Moodle XML file to write (overrides config)")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}
