package settings

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"eclipse-sync/internal/logger"
)

// File extensions recognized in a settings source directory.
const (
	// EPFExt marks a combined export holding every component's preferences
	// in /instance/<component>/<key>=<value> form.
	EPFExt = ".epf"

	// PrefsExt marks an individual per-component preference file.
	PrefsExt = ".preferences"
)

// Format classifies what a settings source directory contains.
type Format int

const (
	// FormatNone: neither export type present.
	FormatNone Format = iota
	// FormatEPF: a combined export file.
	FormatEPF
	// FormatPrefs: individual per-component preference files.
	FormatPrefs
)

// String returns the human-readable name of the format for reports.
func (f Format) String() string {
	switch f {
	case FormatEPF:
		return "combined export (.epf)"
	case FormatPrefs:
		return "individual preference files"
	default:
		return "none"
	}
}

// Source describes an inspected settings source directory.
type Source struct {
	Dir    string   // the inspected directory
	Format Format   // detected format
	EPF    string   // path of the selected combined export, when FormatEPF
	Prefs  []string // paths of the preference files, when FormatPrefs
}

// Inspect determines whether sourceDir contains a combined export or a set
// of individual preference files. A combined export takes priority when both
// are present. When several combined exports exist, the lexicographically
// smallest file name is chosen so detection does not depend on directory
// enumeration order.
func Inspect(sourceDir string) (Source, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return Source{}, err
	}

	var epfs, prefs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case strings.HasSuffix(name, EPFExt):
			epfs = append(epfs, filepath.Join(sourceDir, name))
		case strings.HasSuffix(name, PrefsExt):
			prefs = append(prefs, filepath.Join(sourceDir, name))
		}
	}
	sort.Strings(epfs)
	sort.Strings(prefs)

	if len(epfs) > 0 {
		if len(epfs) > 1 {
			logger.Warn("[WARN] %d combined exports in %s, using %s\n",
				len(epfs), sourceDir, filepath.Base(epfs[0]))
		}
		return Source{Dir: sourceDir, Format: FormatEPF, EPF: epfs[0]}, nil
	}
	if len(prefs) > 0 {
		return Source{Dir: sourceDir, Format: FormatPrefs, Prefs: prefs}, nil
	}
	return Source{Dir: sourceDir, Format: FormatNone}, nil
}
