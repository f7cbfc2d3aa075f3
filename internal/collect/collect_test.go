package collect_test

import (
	"os"
	"path/filepath"
	"testing"

	"cxrextract/internal/collect"
	"cxrextract/internal/logging"
	"cxrextract/internal/sequence"
)

type stubReader struct {
	raw string
}

func (s stubReader) LayerDescriptor(path string) (string, error) {
	return s.raw, nil
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCollectMissingPath(t *testing.T) {
	c := collect.New(nil, logging.NewNop())
	if entries := c.Collect(filepath.Join(t.TempDir(), "nope")); len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestCollectSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.0001.cxr")
	writeFile(t, path)

	c := collect.New(stubReader{}, logging.NewNop())
	entries := c.Collect(path)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].SequenceName != "shot" || entries[0].FrameNumber != 1 {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestCollectSingleFileUppercaseExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.0001.CXR")
	writeFile(t, path)

	c := collect.New(stubReader{}, logging.NewNop())
	if entries := c.Collect(path); len(entries) != 1 {
		t.Fatalf("expected case-insensitive extension match, got %d entries", len(entries))
	}
}

func TestCollectSingleFileWrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.0001.exr")
	writeFile(t, path)

	c := collect.New(stubReader{}, logging.NewNop())
	if entries := c.Collect(path); len(entries) != 0 {
		t.Fatalf("expected no entries for non-cxr file, got %d", len(entries))
	}
}

func TestCollectSingleFileBadName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badname.cxr")
	writeFile(t, path)

	c := collect.New(stubReader{}, logging.NewNop())
	if entries := c.Collect(path); len(entries) != 0 {
		t.Fatalf("expected no entries for invalid name, got %d", len(entries))
	}
}

func TestCollectDirectoryRecursiveSortedAndTolerant(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "other.0002.cxr"))
	writeFile(t, filepath.Join(dir, "a", "shot.0001.cxr"))
	writeFile(t, filepath.Join(dir, "a", "invalid-name.cxr")) // skipped, walk continues
	writeFile(t, filepath.Join(dir, "a", "notes.txt"))        // wrong extension

	c := collect.New(stubReader{}, logging.NewNop())
	entries := c.Collect(dir)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].SequenceName != "shot" || entries[1].SequenceName != "other" {
		t.Fatalf("entries not sorted by path: %+v", entries)
	}
}

func TestCollectDirectoryEntriesCarryLayers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shot.0001.cxr"))

	c := collect.New(stubReader{raw: `"Reflect|0|Glossy"`}, logging.NewNop())
	entries := c.Collect(dir)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	want := []string{sequence.LayerBeauty, sequence.LayerAlpha, "Reflect"}
	got := entries[0].AvailableLayers
	if len(got) != len(want) {
		t.Fatalf("unexpected layers: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("layer %d = %q, want %q", i, got[i], want[i])
		}
	}
}
