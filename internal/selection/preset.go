package selection

import (
	"fmt"

	"cxrextract/internal/sequence"
)

// Preset is a non-interactive selector driven by command-line flags: optional
// sequence-name and frame-number filters plus either the wildcard or an
// explicit layer list applied to every selected sequence.
type Preset struct {
	Sequences []string
	Frames    []int
	All       bool
	Layers    []string
}

// SelectFiles keeps the entries whose sequence name and frame number pass the
// filters; an empty filter keeps everything.
func (p *Preset) SelectFiles(entries []sequence.Entry) ([]sequence.Entry, error) {
	wantedNames := make(map[string]struct{}, len(p.Sequences))
	for _, name := range p.Sequences {
		wantedNames[name] = struct{}{}
	}
	wantedFrames := make(map[int]struct{}, len(p.Frames))
	for _, frame := range p.Frames {
		wantedFrames[frame] = struct{}{}
	}

	var selected []sequence.Entry
	for _, entry := range entries {
		if len(wantedNames) > 0 {
			if _, ok := wantedNames[entry.SequenceName]; !ok {
				continue
			}
		}
		if len(wantedFrames) > 0 {
			if _, ok := wantedFrames[entry.FrameNumber]; !ok {
				continue
			}
		}
		selected = append(selected, entry)
	}
	if len(selected) == 0 && (len(wantedNames) > 0 || len(wantedFrames) > 0) {
		return nil, fmt.Errorf("no collected files match sequences %v frames %v", p.Sequences, p.Frames)
	}
	return selected, nil
}

// SelectLayers applies the preset layer choice to every sequence. Explicit
// layer names are checked against the layers the sequence actually offers.
func (p *Preset) SelectLayers(groups map[string][]sequence.Entry) (Selection, error) {
	result := make(Selection, len(groups))
	for _, name := range sequence.Names(groups) {
		if p.All {
			result[name] = AllLayers()
			continue
		}
		frames := groups[name]
		available := frames[0].AvailableLayers
		for _, layer := range p.Layers {
			if !containsName(available, layer) {
				return nil, fmt.Errorf("sequence %q does not offer layer %q (available: %v)", name, layer, available)
			}
		}
		sel, err := Layers(p.Layers)
		if err != nil {
			return nil, err
		}
		result[name] = sel
	}
	return result, nil
}

func containsName(names []string, want string) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}
