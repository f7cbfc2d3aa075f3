// Package coronaimage drives the external CoronaImageCmd binary. The tool's
// batch mode converts CXR frames to viewable images one render element at a
// time; this package builds those invocations and classifies their failures.
package coronaimage
