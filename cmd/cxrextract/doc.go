// Package main hosts the cxrextract CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into sequence
// discovery, render element selection, and CoronaImageCmd extraction runs. It
// centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
package main
