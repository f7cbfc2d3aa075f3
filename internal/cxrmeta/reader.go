package cxrmeta

import (
	"errors"
	"fmt"

	"github.com/mrjoshuak/go-openexr/exr"
)

// AttrCoronaElements is the header attribute Corona writes to describe the
// render elements stored in a CXR file.
const AttrCoronaElements = "corona.elements"

// ErrAttributeMissing reports a readable file without the elements attribute.
var ErrAttributeMissing = errors.New("corona.elements attribute not present")

// Reader extracts the raw render-element descriptor from CXR headers. CXR is
// an EXR container, so the standard EXR header machinery applies.
type Reader struct{}

// NewReader constructs a header metadata reader.
func NewReader() *Reader {
	return &Reader{}
}

// LayerDescriptor opens the file at path and returns the corona.elements
// string attribute from its first header part. Every failure mode (unreadable
// file, non-EXR content, missing or non-string attribute) comes back as an
// error; callers decide whether that is fatal.
func (r *Reader) LayerDescriptor(path string) (string, error) {
	file, err := exr.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open header: %w", err)
	}
	defer file.Close()

	header := file.Header(0)
	if header == nil {
		return "", errors.New("file has no header part")
	}

	attr := header.Get(AttrCoronaElements)
	if attr == nil {
		return "", ErrAttributeMissing
	}
	value, ok := attr.Value.(string)
	if !ok {
		return "", fmt.Errorf("%s attribute is not a string", AttrCoronaElements)
	}
	return value, nil
}
