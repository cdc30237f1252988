// Package config resolves the tool's runtime configuration from a property
// bag. It declares the recognized property keys, builds the default
// parameter catalog, and provides the Resolver whose typed accessors apply
// defaults, derive values, and validate that required properties are
// present. It performs no I/O: the bag arrives fully materialized and every
// accessor is a pure computation over it.
package config
