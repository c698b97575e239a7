package archive

import (
	"archive/tar"    // For reading .tar bundles
	"archive/zip"    // For reading .zip bundles
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"eclipse-sync/internal/logger"

	"github.com/bodgit/sevenzip" // For reading .7z bundles
	"github.com/xi2/xz"          // For reading .xz compressed data
)

// Extensions of settings bundles the importer accepts as a source. Teams
// commonly distribute their exported settings zipped up rather than as a
// bare directory.
var bundleExts = []string{".zip", ".7z", ".tar", ".tar.gz", ".tgz", ".tar.bz2", ".tar.xz"}

// IsBundle reports whether path looks like a supported settings bundle
// archive, judged by file extension.
func IsBundle(path string) bool {
	for _, ext := range bundleExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Extract unpacks the bundle at src into dest and returns the directory that
// should be inspected for settings: when the bundle wraps everything in a
// single top-level folder that folder is returned, otherwise dest itself.
func Extract(src, dest string) (string, error) {
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] Extracting zip bundle %s\n", src)
		return extractZip(src, dest)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] Extracting 7z bundle %s\n", src)
		return extract7z(src, dest)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] Extracting tar bundle %s\n", src)
		return extractTar(src, dest)
	default:
		return "", fmt.Errorf("unsupported bundle format: %s", src)
	}
}

// root tracks the top-level path components seen while extracting so Extract
// can decide whether the bundle has a single wrapping folder.
type root struct {
	names map[string]bool
}

func (r *root) note(name string) {
	if r.names == nil {
		r.names = make(map[string]bool)
	}
	name = filepath.ToSlash(name)
	if first, _, _ := strings.Cut(name, "/"); first != "" {
		r.names[first] = true
	}
}

// dir resolves the inspection directory under dest: the sole top-level
// folder when there is exactly one, else dest.
func (r *root) dir(dest string) string {
	if len(r.names) == 1 {
		for name := range r.names {
			sub := filepath.Join(dest, name)
			if info, err := os.Stat(sub); err == nil && info.IsDir() {
				return sub
			}
		}
	}
	return dest
}

// extractTar handles tar and its compressed variants.
func extractTar(src, dest string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return "", err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	var top root
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		top.note(hdr.Name)

		target := filepath.Join(dest, hdr.Name)
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return "", err
			}
			outFile, err := os.Create(target)
			if err != nil {
				return "", err
			}
			if _, err := io.Copy(outFile, tr); err != nil {
				outFile.Close()
				return "", err
			}
			outFile.Close()
		}
	}
	return top.dir(dest), nil
}

// extractZip extracts a .zip bundle.
func extractZip(src, dest string) (string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var top root
	for _, f := range r.File {
		top.note(f.Name)
		path := filepath.Join(dest, f.Name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0755); err != nil {
				return "", err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", err
		}
		outFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
		if err != nil {
			return "", err
		}
		rc, err := f.Open()
		if err != nil {
			outFile.Close()
			return "", err
		}
		_, err = io.Copy(outFile, rc)
		rc.Close()
		outFile.Close()
		if err != nil {
			return "", err
		}
	}
	return top.dir(dest), nil
}

// extract7z handles .7z bundles using the sevenzip library.
func extract7z(src, dest string) (string, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to open 7z bundle: %w", err)
	}
	defer r.Close()

	var top root
	for _, f := range r.File {
		top.note(f.Name)
		path := filepath.Join(dest, f.Name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, f.Mode()); err != nil {
				return "", err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", err
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		outFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
		if err != nil {
			rc.Close()
			return "", err
		}
		_, err = io.Copy(outFile, rc)
		rc.Close()
		outFile.Close()
		if err != nil {
			return "", err
		}
	}
	return top.dir(dest), nil
}
