// Package extract orchestrates per-sequence render element extraction:
// output naming, skip-existing filtering, and batching frames into
// CoronaImageCmd invocations.
package extract
