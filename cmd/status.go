package cmd

import (
	"eclipse-sync/internal/config"
	"eclipse-sync/internal/logger"
	"eclipse-sync/internal/settings"
	"eclipse-sync/internal/state"

	"github.com/spf13/cobra"
)

// statusStatePath is the history file read by the status command.
var statusStatePath string

// statusCmd summarizes a workspace: the last recorded import and the
// per-component preference files currently in its settings directory.
var statusCmd = &cobra.Command{
	Use:   "status [workspace]",
	Short: "Summarize a workspace's applied settings and last import",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath)
		ws, err := resolveWorkspaceArg(args, cfg)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return err
		}

		st := state.Load(statusStatePath)
		if rec, ok := st.Imports[ws]; ok {
			logger.Info("[INFO] Last import: %s from %s (%s), %d file(s)\n",
				rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Source, rec.Format, rec.FilesApplied)
			if rec.BackupPath != "" {
				logger.Info("[INFO] Backup: %s\n", rec.BackupPath)
			}
		} else {
			logger.Warn("[WARN] No recorded import for %s\n", ws)
		}

		summaries, err := settings.Summarize(ws)
		if err != nil {
			logger.Error("[ERROR] Failed to summarize %s: %v\n", ws, err)
			return err
		}
		if len(summaries) == 0 {
			logger.Warn("[WARN] No settings files in %s\n", ws)
			return nil
		}
		for _, s := range summaries {
			logger.Info("[INFO] %s: %d key(s)\n", s.Component, s.Keys)
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusStatePath, "state", state.DefaultPath(), "Path to import history file")
	rootCmd.AddCommand(statusCmd)
}
