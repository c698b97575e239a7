package cmd

import (
	"eclipse-sync/internal/config"
	"eclipse-sync/internal/logger"
	"eclipse-sync/internal/workspace"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// locateCmd lists the Eclipse workspaces discoverable on this machine.
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "List discoverable Eclipse workspaces",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load(configPath)
		found := workspace.NewLocator(cfg.SearchDirs).Discover()

		if len(found) == 0 {
			logger.Warn("[WARN] No Eclipse workspaces found\n")
			return
		}
		for _, ws := range found {
			if workspace.IsWorkspace(ws) {
				logger.Info("[INFO] %s\n", ws)
			} else {
				// Exists but has no .metadata yet; Eclipse may not have
				// opened it.
				logger.Warn("[WARN] %s (no %s directory)\n", ws, workspace.MetadataDir)
			}
		}
	},
}

// resolveWorkspaceArg picks the workspace for commands that take an optional
// positional workspace argument: the argument when given, otherwise a
// discovered workspace, prompting when there is more than one.
func resolveWorkspaceArg(args []string, cfg config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	found := workspace.NewLocator(cfg.SearchDirs).Discover()
	switch len(found) {
	case 0:
		return "", errors.New("no workspace given and none discovered")
	case 1:
		return found[0], nil
	}
	idx, err := selectWorkspace(found)
	if err != nil {
		return "", err
	}
	return found[idx], nil
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
