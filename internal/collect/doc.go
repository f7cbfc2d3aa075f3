// Package collect walks a file or directory input and turns matching CXR
// files into sequence entries, tolerating per-file failures.
package collect
