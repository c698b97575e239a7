package settings

import (
	"os"
	"path/filepath"
	"strings"

	"eclipse-sync/internal/logger"

	"github.com/pkg/errors"
)

// VersionHeader is the fixed first line of every preference file Eclipse
// reads from the settings directory.
const VersionHeader = "eclipse.preferences.version=1"

// instancePrefix addresses workspace-scoped entries in a combined export.
const instancePrefix = "/instance/"

// SkippedLine records an export line that matched neither a comment, a blank
// line, nor the /instance/<component>/<key>=<value> shape. Skipped lines are
// diagnostics, not failures: a malformed export still converts, but the
// caller can see exactly what was dropped.
type SkippedLine struct {
	Number int    // 1-based line number in the export file
	Text   string // the offending line, trimmed
}

// Conversion is the result of materializing a combined export as
// per-component preference files.
type Conversion struct {
	FilesWritten int           // number of component files written
	Components   []string      // component identifiers, in first-appearance order
	Skipped      []SkippedLine // lines that did not parse
}

// export holds a parsed combined export: entries grouped by component,
// components and per-component entries both in first-appearance order.
type export struct {
	components []string
	entries    map[string][]string
	skipped    []SkippedLine
}

// parseEPF reads and parses a combined export file without writing anything.
// Shared by Convert and Describe.
func parseEPF(epfPath string) (*export, error) {
	raw, err := os.ReadFile(epfPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrConversionInputMissing, epfPath)
		}
		return nil, errors.Wrapf(err, "failed to read %s", epfPath)
	}

	ex := &export{entries: make(map[string][]string)}
	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		component, entry, ok := parseInstanceLine(line)
		if !ok {
			ex.skipped = append(ex.skipped, SkippedLine{Number: i + 1, Text: line})
			continue
		}
		if _, seen := ex.entries[component]; !seen {
			ex.components = append(ex.components, component)
		}
		ex.entries[component] = append(ex.entries[component], entry)
	}
	return ex, nil
}

// parseInstanceLine splits a /instance/<component>/<key>=<value> line into
// its component identifier and key=value entry. The component is the run of
// characters up to the first slash after the prefix; the key is everything
// up to the LAST '=' so keys containing '=' survive; the value may be empty.
func parseInstanceLine(line string) (component, entry string, ok bool) {
	rest, found := strings.CutPrefix(line, instancePrefix)
	if !found {
		return "", "", false
	}
	slash := strings.Index(rest, "/")
	if slash <= 0 {
		return "", "", false
	}
	component, entry = rest[:slash], rest[slash+1:]
	if !strings.Contains(entry, "=") || strings.LastIndex(entry, "=") == 0 {
		// No separator at all, or an empty key.
		return "", "", false
	}
	return component, entry, true
}

// Convert materializes the combined export at epfPath as one preference file
// per component under destDir, overwriting existing files by name. Each file
// starts with the version header followed by that component's key=value
// lines in the order they first appeared in the export. Returns the
// conversion result including skipped-line diagnostics.
func Convert(epfPath, destDir string) (Conversion, error) {
	ex, err := parseEPF(epfPath)
	if err != nil {
		return Conversion{}, err
	}
	return ex.write(destDir)
}

// write materializes an already-parsed export under destDir.
func (ex *export) write(destDir string) (Conversion, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return Conversion{}, errors.Wrapf(err, "failed to create settings directory %s", destDir)
	}

	for _, component := range ex.components {
		content := VersionHeader + "\n" + strings.Join(ex.entries[component], "\n") + "\n"
		target := filepath.Join(destDir, component+PrefsExt)
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			return Conversion{}, errors.Wrapf(err, "failed to write %s", target)
		}
		logger.Debug("[DEBUG] Wrote %d entries to %s\n", len(ex.entries[component]), target)
	}

	for _, s := range ex.skipped {
		logger.Warn("[WARN] Skipped malformed export line %d: %s\n", s.Number, s.Text)
	}

	return Conversion{
		FilesWritten: len(ex.components),
		Components:   ex.components,
		Skipped:      ex.skipped,
	}, nil
}
