package settings

import (
	"os"

	"eclipse-sync/internal/archive"
	"eclipse-sync/internal/logger"
	"eclipse-sync/internal/workspace"

	"github.com/pkg/errors"
)

// WorkspaceFinder yields candidate workspace directories. Satisfied by
// *workspace.Locator; tests supply a stub.
type WorkspaceFinder interface {
	Discover() []string
}

// Importer runs the import pipeline: resolve workspace, resolve source,
// detect format, confirm, back up, apply. It holds no console I/O: the
// Select and Confirm hooks are injected by the CLI, so the whole pipeline
// is drivable from tests with plain closures.
type Importer struct {
	// Finder discovers workspaces when the caller supplies no path.
	Finder WorkspaceFinder

	// DefaultSource is used when Options.Source is empty, from config.
	DefaultSource string

	// Select is called when several workspaces are discovered; it returns
	// the index of the chosen candidate. An out-of-range index is a usage
	// error. When nil, multiple candidates fail the import.
	Select func(candidates []string) (int, error)

	// Confirm is asked before anything is written, unless Options.Force is
	// set. A false return aborts the import cleanly with no writes. When
	// nil, unforced imports are treated as declined.
	Confirm func(plan Plan) bool
}

// Options are the caller-resolved inputs of one import operation.
type Options struct {
	Workspace string // workspace root; empty means discover
	Source    string // settings source dir or bundle archive; empty means DefaultSource
	Backup    bool   // snapshot the settings directory before applying
	Force     bool   // skip the confirmation step
	DryRun    bool   // report what would be applied without writing
}

// Plan is what the Confirm hook gets to show the user before any mutation.
type Plan struct {
	Workspace   string // chosen workspace root
	SettingsDir string // destination settings directory
	Source      string // settings source as resolved
	Format      Format // detected source format
	Files       int    // component files that would be written or copied
}

// Result reports the outcome of an import.
type Result struct {
	Workspace    string        // workspace the import targeted
	Source       string        // source as given by the caller
	Format       Format        // detected source format
	FilesApplied int           // files written or copied (planned count on dry runs)
	BackupPath   string        // backup location, empty when none was taken
	Skipped      []SkippedLine // malformed export lines, for EPF sources
	Aborted      bool          // user declined at the confirmation step
	DryRun       bool          // nothing was written
}

// Import runs one import operation. Failure kinds are the sentinel errors in
// this package; a user-declined confirmation is not a failure and comes back
// as Result.Aborted with a nil error.
func (imp *Importer) Import(opts Options) (Result, error) {
	ws, err := imp.resolveWorkspace(opts.Workspace)
	if err != nil {
		return Result{}, err
	}
	settingsDir := workspace.SettingsDir(ws)

	srcPath := opts.Source
	if srcPath == "" {
		srcPath = imp.DefaultSource
	}
	srcDir, cleanup, err := resolveSource(srcPath)
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	src, err := Inspect(srcDir)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to inspect source %s", srcDir)
	}
	if src.Format == FormatNone {
		return Result{}, errors.Wrap(ErrInvalidFormat, srcDir)
	}

	// Parse the combined export up front so the plan and dry-run report real
	// component counts, and a vanished file fails before any mutation.
	var ex *export
	files := len(src.Prefs)
	if src.Format == FormatEPF {
		if ex, err = parseEPF(src.EPF); err != nil {
			return Result{}, err
		}
		files = len(ex.components)
	}

	result := Result{Workspace: ws, Source: srcPath, Format: src.Format}
	if ex != nil {
		result.Skipped = ex.skipped
	}

	if opts.DryRun {
		logger.Info("[INFO] Dry run: would apply %d file(s) from %s to %s\n", files, srcPath, settingsDir)
		result.DryRun = true
		result.FilesApplied = files
		return result, nil
	}

	if !opts.Force {
		plan := Plan{Workspace: ws, SettingsDir: settingsDir, Source: srcPath, Format: src.Format, Files: files}
		if imp.Confirm == nil || !imp.Confirm(plan) {
			logger.Info("[INFO] Import declined, nothing changed\n")
			result.Aborted = true
			return result, nil
		}
	}

	if opts.Backup {
		backupPath, err := Snapshot(settingsDir)
		if err != nil {
			return Result{}, err
		}
		result.BackupPath = backupPath
	}

	switch src.Format {
	case FormatEPF:
		conv, err := ex.write(settingsDir)
		if err != nil {
			return Result{}, err
		}
		result.FilesApplied = conv.FilesWritten
	case FormatPrefs:
		copied, err := CopyPrefs(src.Dir, settingsDir)
		if err != nil {
			return Result{}, err
		}
		result.FilesApplied = copied
	}

	logger.Info("[INFO] Applied %d settings file(s) to %s\n", result.FilesApplied, settingsDir)
	return result, nil
}

// resolveWorkspace picks the target workspace: the supplied path when given,
// otherwise a discovered one, delegating the choice to the Select hook when
// more than one candidate exists.
func (imp *Importer) resolveWorkspace(supplied string) (string, error) {
	if supplied != "" {
		info, err := os.Stat(supplied)
		if err != nil || !info.IsDir() {
			return "", errors.Wrap(ErrWorkspaceNotFound, supplied)
		}
		if !workspace.IsWorkspace(supplied) {
			logger.Warn("[WARN] %s has no %s directory; is it an Eclipse workspace?\n",
				supplied, workspace.MetadataDir)
		}
		return supplied, nil
	}

	var candidates []string
	if imp.Finder != nil {
		candidates = imp.Finder.Discover()
	}
	switch len(candidates) {
	case 0:
		return "", ErrNoWorkspace
	case 1:
		logger.Debug("[DEBUG] Single workspace candidate: %s\n", candidates[0])
		return candidates[0], nil
	}

	if imp.Select == nil {
		return "", errors.Wrap(ErrBadSelection, "multiple workspaces found and no selector provided")
	}
	idx, err := imp.Select(candidates)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(candidates) {
		return "", errors.Wrapf(ErrBadSelection, "index %d of %d candidates", idx, len(candidates))
	}
	return candidates[idx], nil
}

// resolveSource turns the user-supplied source path into a directory to
// inspect. Bundle archives are extracted into a temp directory which the
// returned cleanup removes.
func resolveSource(srcPath string) (dir string, cleanup func(), err error) {
	cleanup = func() {}
	if srcPath == "" {
		return "", cleanup, errors.Wrap(ErrSourceNotFound, "no settings source given")
	}
	info, err := os.Stat(srcPath)
	if err != nil {
		return "", cleanup, errors.Wrap(ErrSourceNotFound, srcPath)
	}
	if info.IsDir() {
		return srcPath, cleanup, nil
	}
	if !archive.IsBundle(srcPath) {
		return "", cleanup, errors.Wrapf(ErrInvalidFormat, "%s is neither a directory nor a settings bundle", srcPath)
	}

	tmp, err := os.MkdirTemp("", "eclipse-sync-bundle-")
	if err != nil {
		return "", cleanup, errors.Wrap(err, "failed to create temp dir for bundle")
	}
	cleanup = func() { os.RemoveAll(tmp) }

	extracted, err := archive.Extract(srcPath, tmp)
	if err != nil {
		cleanup()
		return "", func() {}, errors.Wrapf(err, "failed to extract bundle %s", srcPath)
	}
	logger.Debug("[DEBUG] Extracted bundle %s to %s\n", srcPath, extracted)
	return extracted, cleanup, nil
}
