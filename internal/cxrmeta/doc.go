// Package cxrmeta reads the corona.elements descriptor from CXR file headers.
// Only the header is consumed; pixel data is never decoded here.
package cxrmeta
