package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"eclipse-sync/internal/logger"
)

func init() {
	logger.Init(false)
}

func TestIsBundle(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "team-settings.zip", want: true},
		{path: "team-settings.7z", want: true},
		{path: "team-settings.tar", want: true},
		{path: "team-settings.tar.gz", want: true},
		{path: "team-settings.tgz", want: true},
		{path: "team-settings.tar.bz2", want: true},
		{path: "team-settings.tar.xz", want: true},
		{path: "team-settings.rar", want: false},
		{path: "team.epf", want: false},
		{path: "settings-dir", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsBundle(tt.path); got != tt.want {
				t.Errorf("IsBundle(%q) = %v, expected %v", tt.path, got, tt.want)
			}
		})
	}
}

func makeZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating zip: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return path
}

func TestExtractZipWithTopLevelFolder(t *testing.T) {
	bundle := makeZip(t, map[string]string{
		"team-settings/team.epf":  "/instance/c/k=v\n",
		"team-settings/notes.txt": "readme\n",
	})

	dest := t.TempDir()
	root, err := Extract(bundle, dest)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if root != filepath.Join(dest, "team-settings") {
		t.Errorf("Expected the wrapping folder as root, got %s", root)
	}
	got, err := os.ReadFile(filepath.Join(root, "team.epf"))
	if err != nil {
		t.Fatalf("reading extracted file: %v", err)
	}
	if string(got) != "/instance/c/k=v\n" {
		t.Errorf("Extracted content differs: %q", got)
	}
}

func TestExtractFlatZip(t *testing.T) {
	bundle := makeZip(t, map[string]string{
		"a.preferences": "eclipse.preferences.version=1\n",
		"b.preferences": "eclipse.preferences.version=1\n",
	})

	dest := t.TempDir()
	root, err := Extract(bundle, dest)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if root != dest {
		t.Errorf("A flat bundle extracts to dest itself, got %s", root)
	}
	for _, name := range []string{"a.preferences", "b.preferences"} {
		if _, err := os.Stat(filepath.Join(dest, name)); err != nil {
			t.Errorf("%s missing after extraction: %v", name, err)
		}
	}
}

func TestExtractTarGz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.tar.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating tar.gz: %v", err)
	}
	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	content := []byte("/instance/c/k=v\n")
	if err := tw.WriteHeader(&tar.Header{
		Name:     "settings/team.epf",
		Typeflag: tar.TypeReg,
		Mode:     0644,
		Size:     int64(len(content)),
	}); err != nil {
		t.Fatalf("tar header: %v", err)
	}
	if _, err := tw.Write(content); err != nil {
		t.Fatalf("tar write: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("closing tar: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("closing gzip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}

	dest := t.TempDir()
	root, err := Extract(path, dest)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if root != filepath.Join(dest, "settings") {
		t.Errorf("Expected settings folder as root, got %s", root)
	}
	if _, err := os.Stat(filepath.Join(root, "team.epf")); err != nil {
		t.Errorf("Extracted file missing: %v", err)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	src := filepath.Join(t.TempDir(), "bundle.rar")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Extract(src, t.TempDir()); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}
