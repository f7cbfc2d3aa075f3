package sequence

import "sort"

// Group buckets entries by sequence name, each bucket sorted ascending by
// frame number. The sort is stable so duplicate frame numbers keep their
// collection order. Pure: the input slice is not reordered.
func Group(entries []Entry) map[string][]Entry {
	groups := make(map[string][]Entry)
	for _, entry := range entries {
		groups[entry.SequenceName] = append(groups[entry.SequenceName], entry)
	}
	for name, frames := range groups {
		sort.SliceStable(frames, func(i, j int) bool {
			return frames[i].FrameNumber < frames[j].FrameNumber
		})
		groups[name] = frames
	}
	return groups
}

// Names returns the group keys in lexical order for deterministic iteration.
func Names(groups map[string][]Entry) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
