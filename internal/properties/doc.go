// Package properties defines the string-keyed property bag that is the
// tool's sole configuration source, along with sources that assemble a bag
// from already-resident data. Bags arrive fully materialized; nothing in
// this package reads files or parses command lines.
package properties
