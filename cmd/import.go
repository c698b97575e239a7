package cmd

import (
	"fmt"
	"time"

	"eclipse-sync/internal/config"
	"eclipse-sync/internal/logger"
	"eclipse-sync/internal/settings"
	"eclipse-sync/internal/state"
	"eclipse-sync/internal/workspace"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// Flags for the import command.
var (
	importWorkspace string // explicit workspace root; empty means discover
	importSource    string // settings source dir or bundle; empty means config default
	importBackup    bool   // snapshot the settings directory first
	importForce     bool   // skip the confirmation prompt
	importDryRun    bool   // report only, write nothing
	statePath       string // import history file
)

// importCmd applies a team settings source to a workspace. The command owns
// all prompting: workspace selection when several are discovered, and the
// confirmation before anything is written. The importer core only sees the
// answers.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import team settings into an Eclipse workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath)

		imp := &settings.Importer{
			Finder:        workspace.NewLocator(cfg.SearchDirs),
			DefaultSource: cfg.DefaultSource,
			Select:        selectWorkspace,
			Confirm:       confirmImport,
		}

		result, err := imp.Import(settings.Options{
			Workspace: importWorkspace,
			Source:    importSource,
			Backup:    importBackup,
			Force:     importForce,
			DryRun:    importDryRun,
		})
		if err != nil {
			logger.Error("[ERROR] Import failed: %v\n", err)
			return err
		}

		for _, s := range result.Skipped {
			logger.Warn("[WARN] Export line %d not applied: %s\n", s.Number, s.Text)
		}

		switch {
		case result.Aborted:
			// Declined at the prompt; nothing was written and that is fine.
			return nil
		case result.DryRun:
			logger.Info("[INFO] Dry run complete: %d file(s) would be applied to %s\n",
				result.FilesApplied, result.Workspace)
			return nil
		}

		if result.BackupPath != "" {
			logger.Info("[INFO] Previous settings saved at %s\n", result.BackupPath)
		}
		logger.Info("[INFO] Imported %d settings file(s) into %s\n", result.FilesApplied, result.Workspace)

		// Record the outcome so `status` can report the last import.
		st := state.Load(statePath)
		st.Imports[result.Workspace] = state.ImportRecord{
			Source:       result.Source,
			Format:       result.Format.String(),
			FilesApplied: result.FilesApplied,
			BackupPath:   result.BackupPath,
			Timestamp:    time.Now(),
		}
		state.Save(statePath, st)
		return nil
	},
}

// selectWorkspace prompts the user to pick one of several discovered
// workspaces and returns its index.
func selectWorkspace(candidates []string) (int, error) {
	options := make([]huh.Option[int], len(candidates))
	for i, c := range candidates {
		options[i] = huh.NewOption(c, i)
	}

	var choice int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Several Eclipse workspaces found, pick one:").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return 0, err
	}
	return choice, nil
}

// confirmImport asks for an explicit yes before the workspace is mutated.
func confirmImport(plan settings.Plan) bool {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Apply %d settings file(s) from %s to %s?",
				plan.Files, plan.Source, plan.SettingsDir)).
			Description(fmt.Sprintf("Source format: %s", plan.Format)).
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		logger.Error("[ERROR] Confirmation prompt failed: %v\n", err)
		return false
	}
	return ok
}

// init sets up the import command flags and registers it with root.
func init() {
	importCmd.Flags().StringVarP(&importWorkspace, "workspace", "w", "", "Eclipse workspace root (discovered when omitted)")
	importCmd.Flags().StringVarP(&importSource, "source", "s", "", "Settings source directory or bundle archive")
	importCmd.Flags().BoolVarP(&importBackup, "backup", "b", false, "Back up the existing settings directory first")
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "Apply without asking for confirmation")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show what would be applied without writing")
	importCmd.Flags().StringVar(&statePath, "state", state.DefaultPath(), "Path to import history file")

	rootCmd.AddCommand(importCmd)
}
