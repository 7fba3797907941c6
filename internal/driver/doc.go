// Package driver runs the headspace pipeline end to end: load a source
// buffer, tokenize, parse, check, and emit every requested target.
//
// Targets are emitted concurrently over the same immutable tree. Results
// come back in request order regardless of completion order. The driver is
// the only layer that touches the disk (loading sources, writing artifacts
// and the artifact cache).
package driver
