// Package hclprops assembles a property bag from an HCL attribute body
// held in memory. It exists for callers (build-tool integrations, tests)
// that prefer a structured syntax over raw NAME=value pairs; any file I/O
// stays with the caller, this package only parses bytes it is handed.
package hclprops
