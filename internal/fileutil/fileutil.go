package fileutil

import "os"

// NonEmptyFile reports whether path exists as a regular file with a size
// greater than zero bytes. Zero-byte files are treated as absent so aborted
// extractions get re-attempted.
func NonEmptyFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	return info.Size() > 0
}

// EnsureDir creates dir and any missing parents. Creation is idempotent; an
// existing directory is not an error.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
