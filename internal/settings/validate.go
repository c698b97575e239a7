package settings

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"eclipse-sync/internal/workspace"

	"github.com/pkg/errors"
)

// ValidationReport compares a workspace's settings directory against the
// expected-component checklist.
type ValidationReport struct {
	Present  int      // expected components that have a preference file
	Expected int      // size of the checklist
	Missing  []string // checklist entries without a preference file
}

// Validate checks which of the expected components have a preference file in
// the workspace's settings directory. A missing settings directory simply
// means nothing is present yet.
func Validate(workspaceRoot string, checklist []string) ValidationReport {
	report := ValidationReport{Expected: len(checklist)}
	settingsDir := workspace.SettingsDir(workspaceRoot)

	for _, component := range checklist {
		if _, err := os.Stat(filepath.Join(settingsDir, component+PrefsExt)); err == nil {
			report.Present++
		} else {
			report.Missing = append(report.Missing, component)
		}
	}
	return report
}

// ComponentSummary reports one component's preference file in a workspace.
type ComponentSummary struct {
	Component string // plugin identifier, from the file name
	Keys      int    // key=value lines, not counting the version header
}

// Summarize lists the per-component preference files in a workspace's
// settings directory with their key counts, sorted by component. A workspace
// with no settings directory yields an empty summary.
func Summarize(workspaceRoot string) ([]ComponentSummary, error) {
	settingsDir := workspace.SettingsDir(workspaceRoot)
	entries, err := os.ReadDir(settingsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read settings directory %s", settingsDir)
	}

	var summaries []ComponentSummary
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), PrefsExt) {
			continue
		}
		keys, err := countKeys(filepath.Join(settingsDir, e.Name()))
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ComponentSummary{
			Component: strings.TrimSuffix(e.Name(), PrefsExt),
			Keys:      keys,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Component < summaries[j].Component })
	return summaries, nil
}

// countKeys counts the key=value lines of a preference file, skipping the
// version header, comments, and blanks.
func countKeys(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || line == VersionHeader {
			continue
		}
		if strings.Contains(line, "=") {
			count++
		}
	}
	return count, scanner.Err()
}
