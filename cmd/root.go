package cmd

import (
	"os"

	"eclipse-sync/internal/config"
	"eclipse-sync/internal/logger"

	"github.com/spf13/cobra"
)

// debug indicates whether debug logging should be enabled.
// It is toggled via the global `--debug` flag.
var debug bool

// configPath is the path to the eclipse-sync config YAML, holding the default
// settings source, extra workspace search directories, and the expected
// component checklist.
var configPath string

// rootCmd is the base command for the CLI tool `eclipse-sync`.
var rootCmd = &cobra.Command{
	Use:   "eclipse-sync",
	Short: "Import team Eclipse preference settings into a local workspace",

	// Errors are already logged where they happen; keep cobra from printing
	// them again together with the usage text.
	SilenceErrors: true,
	SilenceUsage:  true,

	// PersistentPreRun runs before any subcommand; it initializes the logger
	// based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes global flags and starts command execution.
// Subcommands register themselves with rootCmd from their init functions.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Path to configuration file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
