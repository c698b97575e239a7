package settings

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// Description reports what a settings source contains without writing
// anything. For combined exports it includes the parsed component and entry
// counts plus any malformed lines.
type Description struct {
	Format     Format        // detected format
	Files      []string      // base names of the relevant files
	Components []string      // components in the export, FormatEPF only
	Entries    int           // total key=value entries, FormatEPF only
	Skipped    []SkippedLine // malformed export lines, FormatEPF only
}

// Describe inspects a settings source path, which may be a directory or a
// bundle archive, and reports its contents. FormatNone is a valid
// description, not an error.
func Describe(sourcePath string) (Description, error) {
	srcDir, cleanup, err := resolveSource(sourcePath)
	if err != nil {
		return Description{}, err
	}
	defer cleanup()

	src, err := Inspect(srcDir)
	if err != nil {
		return Description{}, errors.Wrapf(err, "failed to inspect source %s", srcDir)
	}

	desc := Description{Format: src.Format}
	switch src.Format {
	case FormatEPF:
		desc.Files = []string{filepath.Base(src.EPF)}
		ex, err := parseEPF(src.EPF)
		if err != nil {
			return Description{}, err
		}
		desc.Components = ex.components
		desc.Skipped = ex.skipped
		for _, entries := range ex.entries {
			desc.Entries += len(entries)
		}
	case FormatPrefs:
		for _, p := range src.Prefs {
			desc.Files = append(desc.Files, filepath.Base(p))
		}
	}
	return desc, nil
}
