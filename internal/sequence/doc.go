// Package sequence models CXR frame files: parsing the <name>.<NNNN>.<ext>
// naming convention into sequence identities, decoding the corona.elements
// layer descriptor into selectable render elements, and grouping entries into
// frame-ordered sequences.
package sequence
