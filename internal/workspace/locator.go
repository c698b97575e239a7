package workspace

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"eclipse-sync/internal/logger"
)

// MetadataDir is the marker subdirectory Eclipse creates inside every
// workspace root. Its presence is what identifies a directory as a workspace.
const MetadataDir = ".metadata"

// settingsRelPath is the fixed path of the per-plugin settings directory
// inside a workspace's metadata tree.
const settingsRelPath = ".metadata/.plugins/org.eclipse.core.runtime/.settings"

// recentWorkspacesRe matches the line in Eclipse's IDE preferences that
// records recently opened workspaces as a comma-separated path list.
var recentWorkspacesRe = regexp.MustCompile(`^RECENT_WORKSPACES=(.+)$`)

// IsWorkspace reports whether dir looks like an Eclipse workspace,
// i.e. it contains the .metadata marker directory.
func IsWorkspace(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MetadataDir))
	return err == nil && info.IsDir()
}

// SettingsDir returns the settings directory path for a workspace root.
// The directory may not exist yet; it is created on first import.
func SettingsDir(workspaceRoot string) string {
	return filepath.Join(workspaceRoot, filepath.FromSlash(settingsRelPath))
}

// Locator discovers candidate Eclipse workspaces on the local machine.
// All search locations are explicit fields so tests can point it at a
// temp directory instead of the real home.
type Locator struct {
	// Home is the user home directory probed for Eclipse's per-user
	// configuration area and the conventional default workspace folders.
	Home string

	// ExtraDirs are additional directories to consider, from config.
	ExtraDirs []string
}

// NewLocator builds a Locator rooted at the current user's home directory.
func NewLocator(extraDirs []string) *Locator {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("[WARN] Could not resolve home directory: %v\n", err)
	}
	return &Locator{Home: home, ExtraDirs: extraDirs}
}

// Discover returns existing workspace directories, deduplicated.
// Candidates come from Eclipse's recent-workspaces records under the
// per-user configuration area, the conventional default workspace folders,
// and any configured extra directories. An empty result simply means no
// workspace was found; it is not an error.
func (l *Locator) Discover() []string {
	var candidates []string

	for _, prefsFile := range l.recentWorkspaceFiles() {
		recents := parseRecentWorkspaces(prefsFile)
		logger.Debug("[DEBUG] %s listed %d recent workspaces\n", prefsFile, len(recents))
		candidates = append(candidates, recents...)
	}

	if l.Home != "" {
		candidates = append(candidates,
			filepath.Join(l.Home, "eclipse-workspace"),
			filepath.Join(l.Home, "workspace"),
		)
	}
	candidates = append(candidates, l.ExtraDirs...)

	// Keep only paths that exist as directories, dropping duplicates while
	// preserving first-seen order.
	seen := make(map[string]bool)
	var found []string
	for _, c := range candidates {
		c = filepath.Clean(c)
		if seen[c] {
			continue
		}
		seen[c] = true
		info, err := os.Stat(c)
		if err != nil || !info.IsDir() {
			continue
		}
		found = append(found, c)
	}

	logger.Debug("[DEBUG] Discovered %d workspace candidate(s)\n", len(found))
	return found
}

// recentWorkspaceFiles globs the per-user Eclipse configuration area for IDE
// preference files that may carry a RECENT_WORKSPACES record.
func (l *Locator) recentWorkspaceFiles() []string {
	if l.Home == "" {
		return nil
	}
	pattern := filepath.Join(l.Home, ".eclipse", "*", "configuration", ".settings", "org.eclipse.ui.ide.prefs")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		logger.Error("[ERROR] Failed to glob %s: %v\n", pattern, err)
		return nil
	}
	return matches
}

// parseRecentWorkspaces scans a preferences file for the RECENT_WORKSPACES
// line and splits its comma-separated path list. A missing or unreadable
// file yields no candidates.
func parseRecentWorkspaces(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		logger.Debug("[DEBUG] Cannot read recent workspaces from %s: %v\n", path, err)
		return nil
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := recentWorkspacesRe.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		for _, p := range strings.Split(m[1], ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}
