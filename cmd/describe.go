package cmd

import (
	"eclipse-sync/internal/config"
	"eclipse-sync/internal/logger"
	"eclipse-sync/internal/settings"

	"github.com/spf13/cobra"
)

// describeCmd reports what a settings source contains without writing
// anything. The source may be a directory or a bundle archive.
var describeCmd = &cobra.Command{
	Use:   "describe [source]",
	Short: "Describe a settings source without importing it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := config.Load(configPath).DefaultSource
		if len(args) > 0 {
			source = args[0]
		}

		desc, err := settings.Describe(source)
		if err != nil {
			logger.Error("[ERROR] Cannot describe %s: %v\n", source, err)
			return err
		}

		logger.Info("[INFO] Source: %s\n", source)
		logger.Info("[INFO] Format: %s\n", desc.Format)
		for _, f := range desc.Files {
			logger.Info("[INFO]   %s\n", f)
		}
		if desc.Format == settings.FormatEPF {
			logger.Info("[INFO] %d component(s), %d entries\n", len(desc.Components), desc.Entries)
			for _, c := range desc.Components {
				logger.Info("[INFO]   %s\n", c)
			}
		}
		for _, s := range desc.Skipped {
			logger.Warn("[WARN] Malformed line %d: %s\n", s.Number, s.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
