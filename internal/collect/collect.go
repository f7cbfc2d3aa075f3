package collect

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cxrextract/internal/logging"
	"cxrextract/internal/sequence"
)

// ContainerExt is the Corona renderer's multi-layer container extension,
// matched case-insensitively.
const ContainerExt = ".cxr"

// Collector discovers CXR frame files below an input path. Per-file problems
// are logged and skipped; collection never aborts part way.
type Collector struct {
	reader sequence.MetadataReader
	logger *slog.Logger
}

// New constructs a collector. The reader may be nil, in which case entries
// carry only the two always-present layers.
func New(reader sequence.MetadataReader, logger *slog.Logger) *Collector {
	return &Collector{
		reader: reader,
		logger: logging.NewComponentLogger(logger, "collector"),
	}
}

// Collect returns the entries for every CXR file reachable from inputPath,
// sorted by full path so downstream grouping is deterministic. A missing path,
// a non-CXR single file, or a directory without a single parseable file all
// yield an empty slice; the caller decides whether that ends the run.
func (c *Collector) Collect(inputPath string) []sequence.Entry {
	info, err := os.Stat(inputPath)
	if err != nil {
		c.logger.Error("input path does not exist", logging.String("path", inputPath))
		return nil
	}

	var entries []sequence.Entry
	if info.IsDir() {
		entries = c.collectDirectory(inputPath)
	} else {
		entries = c.collectFile(inputPath)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FullPath() < entries[j].FullPath()
	})
	return entries
}

func (c *Collector) collectFile(path string) []sequence.Entry {
	if !hasContainerExt(path) {
		c.logger.Warn("input file is not a CXR file", logging.String("path", path))
		return nil
	}
	entry, err := sequence.NewEntry(path, c.reader)
	if err != nil {
		c.logger.Error("skipping file with invalid name",
			logging.String("path", path), logging.Error(err))
		return nil
	}
	return []sequence.Entry{entry}
}

func (c *Collector) collectDirectory(dir string) []sequence.Entry {
	c.logger.Info("scanning directory", logging.String("path", dir))

	var entries []sequence.Entry
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Warn("skipping unreadable path",
				logging.String("path", path), logging.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasContainerExt(path) {
			return nil
		}
		entry, entryErr := sequence.NewEntry(path, c.reader)
		if entryErr != nil {
			var namingErr *sequence.NamingError
			if errors.As(entryErr, &namingErr) {
				c.logger.Error("skipping file with invalid name",
					logging.String("path", path), logging.Error(entryErr))
				return nil
			}
			c.logger.Error("skipping file",
				logging.String("path", path), logging.Error(entryErr))
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if walkErr != nil {
		c.logger.Error("directory walk failed", logging.Error(walkErr))
	}

	c.logger.Info("scan finished", logging.Int("files", len(entries)))
	return entries
}

func hasContainerExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ContainerExt)
}
