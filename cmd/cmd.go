package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"preproc/logger"
)

var (
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "preproc",
	Short: "Single-pass preprocessing transforms for small datasets",
	Long: `preproc applies preprocessing transforms to a collection of values or
records: missing-value cleaning, numeric rescaling, text tokenization and
structural operations. Input is a file path (json, yaml or csv), "-" for
stdin, or a literal value such as "1,2,none,4".`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write the result to this path instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(numericCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(structCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
