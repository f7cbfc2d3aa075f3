package selection

import (
	"errors"
	"strings"

	"cxrextract/internal/sequence"
)

// LayerSelection is a tagged choice between "every layer in one pass" and an
// explicit ordered list of layer names. The two states cannot coexist; use
// the constructors.
type LayerSelection struct {
	all    bool
	layers []string
}

// AllLayers selects the wildcard extraction path.
func AllLayers() LayerSelection {
	return LayerSelection{all: true}
}

// Layers selects an explicit, non-empty ordered list of layer names.
func Layers(names []string) (LayerSelection, error) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return LayerSelection{}, errors.New("layer selection requires at least one layer name")
	}
	return LayerSelection{layers: cleaned}, nil
}

// All reports whether the wildcard path was selected.
func (s LayerSelection) All() bool { return s.all }

// Names returns a copy of the explicit layer list; empty for the wildcard.
func (s LayerSelection) Names() []string {
	out := make([]string, len(s.layers))
	copy(out, s.layers)
	return out
}

func (s LayerSelection) String() string {
	if s.all {
		return "all layers"
	}
	return strings.Join(s.layers, ", ")
}

// Selection maps a sequence name to its layer choice. A sequence absent from
// the map is skipped.
type Selection map[string]LayerSelection

// Selector decides which collected frames to process and which layers to
// extract per sequence. Implementations range from terminal prompts to
// flag-driven presets; the extraction core never knows which.
type Selector interface {
	SelectFiles(entries []sequence.Entry) ([]sequence.Entry, error)
	SelectLayers(groups map[string][]sequence.Entry) (Selection, error)
}
