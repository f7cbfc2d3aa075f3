package sequence

import "strings"

// LayerBeauty and LayerAlpha are baked into every CXR file and are always
// selectable, whether or not the header descriptor can be read.
const (
	LayerBeauty = "BEAUTY"
	LayerAlpha  = "Alpha"
)

// excludedLayerTypes are internal Corona element types that cannot be
// extracted as standalone images.
var excludedLayerTypes = map[string]struct{}{
	"SamplingFocus":  {},
	"VisibleDiffuse": {},
	"VisibleNormals": {},
	"Hybrid":         {},
}

// DecodeLayers turns the raw corona.elements descriptor into the ordered list
// of extractable layer names. Descriptors are `", "`-separated segments, each
// a pipe-delimited record whose first field is the element name and third
// field the element type. Malformed segments are dropped, excluded types are
// filtered, and duplicates keep their first occurrence. The two fixed layers
// always open the list.
func DecodeLayers(raw string) []string {
	layers := []string{LayerBeauty, LayerAlpha}

	for _, segment := range strings.Split(raw, `", "`) {
		segment = strings.TrimSpace(strings.Trim(segment, `"`))
		if segment == "" {
			continue
		}

		fields := strings.Split(segment, "|")
		if len(fields) < 3 {
			continue
		}

		name := strings.TrimSpace(fields[0])
		layerType := strings.TrimSpace(fields[2])

		if _, excluded := excludedLayerTypes[layerType]; excluded {
			continue
		}
		if containsLayer(layers, name) {
			continue
		}
		layers = append(layers, name)
	}

	return layers
}

func containsLayer(layers []string, name string) bool {
	for _, layer := range layers {
		if layer == name {
			return true
		}
	}
	return false
}
