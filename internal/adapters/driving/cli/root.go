// Package cli implements the preppal command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/preppal-labs/preppal/internal/logger"
)

// version is set by Execute from the build entry point.
var version = "dev"

var (
	flagVerbose    bool
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "preppal",
	Short: "PrepPal study assistant backend",
	Long: `PrepPal ingests study materials, indexes them for semantic search,
and serves grounded chat answers, quizzes, and study plans over HTTP.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to config file (TOML)")
}

// Execute runs the root command.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.Execute()
}
