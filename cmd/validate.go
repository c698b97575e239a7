package cmd

import (
	"eclipse-sync/internal/config"
	"eclipse-sync/internal/logger"
	"eclipse-sync/internal/settings"

	"github.com/spf13/cobra"
)

// validateCmd checks a workspace's settings directory against the expected
// component checklist from the config.
var validateCmd = &cobra.Command{
	Use:   "validate [workspace]",
	Short: "Check applied settings against the expected component checklist",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath)
		ws, err := resolveWorkspaceArg(args, cfg)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return err
		}

		report := settings.Validate(ws, cfg.ExpectedComponents)
		if len(report.Missing) == 0 {
			logger.Info("[INFO] %s: all %d expected components present\n", ws, report.Expected)
			return nil
		}

		logger.Warn("[WARN] %s: %d of %d expected components present\n", ws, report.Present, report.Expected)
		for _, m := range report.Missing {
			logger.Warn("[WARN]   missing %s\n", m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
