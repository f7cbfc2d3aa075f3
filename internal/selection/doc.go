// Package selection decides which sequences, frames, and render elements an
// extraction run covers. The Selector interface keeps the extraction core
// free of any UI concern: a terminal prompt and a flag-driven preset both
// implement it.
package selection
