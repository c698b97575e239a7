package settings

import (
	"os"
	"path/filepath"
	"time"

	"eclipse-sync/internal/logger"

	"github.com/pkg/errors"
)

// backupTimeFormat names backup directories to second precision. Two imports
// against the same workspace within one second would collide, which is
// acceptable for a manually driven tool.
const backupTimeFormat = "20060102-150405"

// Snapshot copies the entire settings directory to a timestamped sibling
// before an import mutates it. When the settings directory does not exist
// yet there is nothing to protect and Snapshot is a no-op returning "".
func Snapshot(settingsDir string) (string, error) {
	info, err := os.Stat(settingsDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("[DEBUG] No settings directory at %s, skipping backup\n", settingsDir)
			return "", nil
		}
		return "", errors.Wrapf(err, "cannot stat settings directory %s", settingsDir)
	}
	if !info.IsDir() {
		return "", errors.Errorf("settings path %s is not a directory", settingsDir)
	}

	backupDir := filepath.Join(filepath.Dir(settingsDir),
		".settings.backup."+time.Now().Format(backupTimeFormat))
	if err := copyTree(settingsDir, backupDir); err != nil {
		return "", errors.Wrapf(err, "backup to %s failed", backupDir)
	}

	logger.Info("[INFO] Backed up settings to %s\n", backupDir)
	return backupDir, nil
}

// copyTree recursively copies the directory tree rooted at src to dst.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}
