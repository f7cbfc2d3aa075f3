package sequence

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

var namePattern = regexp.MustCompile(`^(.+)\.(\d{4})\.\w+$`)

// NamingError reports a candidate file whose name does not follow the
// <name>.<NNNN>.<ext> convention. Collectors log it and move on.
type NamingError struct {
	Name string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("file name %q does not match <name>.<NNNN>.<ext>", e.Name)
}

// MetadataReader supplies the raw render-element descriptor string embedded in
// a CXR file's header. Implementations report an error when the attribute is
// missing or unreadable; entry construction absorbs those errors.
type MetadataReader interface {
	LayerDescriptor(path string) (string, error)
}

// Entry is one frame file of a sequence. Constructed once at collection time
// and never mutated afterwards.
type Entry struct {
	FileName        string
	DirectoryPath   string
	FrameNumber     int
	SequenceName    string
	AvailableLayers []string
}

// NewEntry parses the file name at path into a sequence identity and asks
// reader for the embedded layer descriptor. A reader failure of any kind
// leaves the entry with just the two always-present layers.
func NewEntry(path string, reader MetadataReader) (Entry, error) {
	base := filepath.Base(path)
	match := namePattern.FindStringSubmatch(base)
	if match == nil {
		return Entry{}, &NamingError{Name: base}
	}

	// The capture is all digits so this cannot fail; leading zeros are a
	// display concern only.
	frame, err := strconv.Atoi(match[2])
	if err != nil {
		return Entry{}, &NamingError{Name: base}
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		dir = filepath.Dir(path)
	}

	var raw string
	if reader != nil {
		if value, err := reader.LayerDescriptor(path); err == nil {
			raw = value
		}
	}

	return Entry{
		FileName:        base,
		DirectoryPath:   dir,
		FrameNumber:     frame,
		SequenceName:    match[1],
		AvailableLayers: DecodeLayers(raw),
	}, nil
}

// FullPath returns the entry's absolute location on disk.
func (e Entry) FullPath() string {
	return filepath.Join(e.DirectoryPath, e.FileName)
}

// DisplayID renders the entry as <sequence>.<frame> with the frame zero-padded
// to four digits.
func (e Entry) DisplayID() string {
	return fmt.Sprintf("%s.%04d", e.SequenceName, e.FrameNumber)
}
