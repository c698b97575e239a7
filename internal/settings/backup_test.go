package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshotMissingSettingsDir(t *testing.T) {
	parent := t.TempDir()
	settingsDir := filepath.Join(parent, ".settings")

	backupPath, err := Snapshot(settingsDir)
	if err != nil {
		t.Fatalf("Snapshot of a missing directory must be a no-op, got %v", err)
	}
	if backupPath != "" {
		t.Errorf("Expected empty backup path, got %s", backupPath)
	}

	// Nothing may have been created.
	entries, err := os.ReadDir(parent)
	if err != nil {
		t.Fatalf("reading parent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("No-op backup created entries: %v", entries)
	}
}

func TestSnapshotCopiesTree(t *testing.T) {
	parent := t.TempDir()
	settingsDir := filepath.Join(parent, ".settings")
	if err := os.MkdirAll(filepath.Join(settingsDir, "nested"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	touch(t, settingsDir, "org.eclipse.jdt.core.preferences", VersionHeader+"\ntabWidth=4\n")
	touch(t, filepath.Join(settingsDir, "nested"), "extra.preferences", VersionHeader+"\n")

	backupPath, err := Snapshot(settingsDir)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if backupPath == "" {
		t.Fatal("Expected a backup path")
	}
	if !strings.HasPrefix(filepath.Base(backupPath), ".settings.backup.") {
		t.Errorf("Unexpected backup name: %s", backupPath)
	}
	if filepath.Dir(backupPath) != parent {
		t.Errorf("Backup must be a sibling of the settings directory, got %s", backupPath)
	}

	got, err := os.ReadFile(filepath.Join(backupPath, "org.eclipse.jdt.core.preferences"))
	if err != nil {
		t.Fatalf("reading backed up file: %v", err)
	}
	if string(got) != VersionHeader+"\ntabWidth=4\n" {
		t.Errorf("Backup content differs: %q", got)
	}
	if _, err := os.Stat(filepath.Join(backupPath, "nested", "extra.preferences")); err != nil {
		t.Errorf("Nested file missing from backup: %v", err)
	}

	// The original stays untouched.
	if _, err := os.Stat(filepath.Join(settingsDir, "org.eclipse.jdt.core.preferences")); err != nil {
		t.Errorf("Original settings file disturbed: %v", err)
	}
}
