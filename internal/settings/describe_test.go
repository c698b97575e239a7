package settings

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDescribeEPF(t *testing.T) {
	src := t.TempDir()
	touch(t, src, "team.epf",
		"/instance/org.eclipse.jdt.core/tabWidth=4\n"+
			"/instance/org.eclipse.jdt.core/indent=space\n"+
			"/instance/org.eclipse.jdt.ui/formatter.enabled=true\n"+
			"not an instance line\n")

	desc, err := Describe(src)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if desc.Format != FormatEPF {
		t.Errorf("Format = %v, expected FormatEPF", desc.Format)
	}
	if len(desc.Files) != 1 || desc.Files[0] != "team.epf" {
		t.Errorf("Files = %v, expected [team.epf]", desc.Files)
	}
	if len(desc.Components) != 2 {
		t.Errorf("Components = %v, expected 2", desc.Components)
	}
	if desc.Entries != 3 {
		t.Errorf("Entries = %d, expected 3", desc.Entries)
	}
	if len(desc.Skipped) != 1 {
		t.Errorf("Skipped = %v, expected 1 diagnostic", desc.Skipped)
	}
}

func TestDescribePrefs(t *testing.T) {
	src := t.TempDir()
	touch(t, src, "org.eclipse.jdt.core.preferences", VersionHeader+"\n")

	desc, err := Describe(src)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if desc.Format != FormatPrefs {
		t.Errorf("Format = %v, expected FormatPrefs", desc.Format)
	}
	if len(desc.Files) != 1 {
		t.Errorf("Files = %v, expected 1 file", desc.Files)
	}
}

func TestDescribeEmptySource(t *testing.T) {
	desc, err := Describe(t.TempDir())
	if err != nil {
		t.Fatalf("Describing an empty source is not an error, got %v", err)
	}
	if desc.Format != FormatNone {
		t.Errorf("Format = %v, expected FormatNone", desc.Format)
	}
}

func TestDescribeMissingSource(t *testing.T) {
	_, err := Describe("/nonexistent/settings/source")
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Expected ErrSourceNotFound, got %v", err)
	}
}
