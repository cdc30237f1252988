// Package bytecode defines the classfile major-version identifiers the tool
// can target, and the read-only table mapping them to human-readable
// platform names.
package bytecode
