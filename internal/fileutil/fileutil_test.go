package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"cxrextract/internal/fileutil"
)

func TestNonEmptyFile(t *testing.T) {
	tmp := t.TempDir()

	missing := filepath.Join(tmp, "missing.exr")
	if fileutil.NonEmptyFile(missing) {
		t.Fatal("missing file reported as non-empty")
	}

	empty := filepath.Join(tmp, "empty.exr")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write empty file: %v", err)
	}
	if fileutil.NonEmptyFile(empty) {
		t.Fatal("zero-byte file reported as non-empty")
	}

	full := filepath.Join(tmp, "full.exr")
	if err := os.WriteFile(full, []byte("pixels"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if !fileutil.NonEmptyFile(full) {
		t.Fatal("expected non-empty file to be reported")
	}

	if fileutil.NonEmptyFile(tmp) {
		t.Fatal("directory reported as non-empty file")
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir second call: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory, got info=%v err=%v", info, err)
	}
}
