// Package catalog provides the registry of recognized configuration
// parameters. A Catalog is built once at startup from an ordered list of
// declared entries and is immutable afterwards; it records which keys are
// required and holds the pre-rendered help block for every key. The
// concrete parameters of this tool are declared in the config package.
package catalog
