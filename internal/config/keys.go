package config

import (
	"fmt"

	"github.com/vk/lambdaport/internal/bytecode"
	"github.com/vk/lambdaport/internal/catalog"
)

// Prefix namespaces every property key recognized by the tool.
const Prefix = "lambdaport."

// The recognized property keys. These, together with their required/optional
// status in DefaultCatalog, form the external contract surface of the tool.
const (
	KeyBytecodeVersion = Prefix + "bytecodeVersion"
	KeyInputDir        = Prefix + "inputDir"
	KeyOutputDir       = Prefix + "outputDir"
	KeyClasspath       = Prefix + "classpath"
	KeyChanged         = Prefix + "changed"
)

// DefaultCatalog builds the catalog of recognized parameters in their
// declared order. It is the single place where keys, requiredness, and help
// wording are tied together.
func DefaultCatalog() *catalog.Catalog {
	return catalog.NewBuilder().
		Optional(KeyBytecodeVersion,
			"Major version number for the generated bytecode. For a list, see",
			"offset 7 at http://en.wikipedia.org/wiki/Java_class_file#General_layout",
			fmt.Sprintf("Default value is %d (i.e. %s)",
				bytecode.DefaultVersion, bytecode.VersionName(bytecode.DefaultVersion))).
		Required(KeyInputDir,
			"Input directory from where the original class files are read.").
		Optional(KeyOutputDir,
			"Output directory into where the generated class files are written.",
			"Defaults to same as "+KeyInputDir).
		Required(KeyClasspath,
			"Classpath containing the original class files and their dependencies.").
		Optional(KeyChanged,
			"A list of all the files that have changed since last run.",
			"This is useful for a build tool to support incremental compilation.").
		Build()
}
