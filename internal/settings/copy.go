package settings

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"eclipse-sync/internal/logger"

	"github.com/pkg/errors"
)

// CopyPrefs copies every individual preference file from sourceDir into
// destDir, overwriting by name, and returns the number of files copied.
// Fails when sourceDir holds zero preference files.
func CopyPrefs(sourceDir, destDir string) (int, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read source %s", sourceDir)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), PrefsExt) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return 0, errors.Wrap(ErrNoPrefsFiles, sourceDir)
	}
	sort.Strings(names)

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, errors.Wrapf(err, "failed to create settings directory %s", destDir)
	}

	for _, name := range names {
		src := filepath.Join(sourceDir, name)
		dst := filepath.Join(destDir, name)
		if err := copyFile(src, dst); err != nil {
			return 0, errors.Wrapf(err, "failed to copy %s", name)
		}
		logger.Debug("[DEBUG] Copied %s -> %s\n", src, dst)
	}
	return len(names), nil
}

// copyFile copies a single file from src to dst, preserving the source
// file's permissions and creating missing destination directories.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "open source failed")
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrap(err, "mkdir failed")
	}

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "create target failed")
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrap(err, "copy failed")
	}

	if stat, serr := os.Stat(src); serr == nil {
		err = os.Chmod(dst, stat.Mode())
	}
	return err
}
