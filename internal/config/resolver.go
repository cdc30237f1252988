package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/vk/lambdaport/internal/bytecode"
	"github.com/vk/lambdaport/internal/catalog"
	"github.com/vk/lambdaport/internal/properties"
)

// Resolver answers typed configuration questions for exactly one run of the
// tool. It holds no state beyond its inputs and caches nothing: every
// accessor re-reads the bag, so the bag may be inspected externally between
// calls without the Resolver going stale. A Resolver should be confined to
// a single logical run.
type Resolver struct {
	cat         *catalog.Catalog
	bag         properties.Bag
	agentLoaded func() bool
}

// NewResolver wraps one property bag. agentLoaded is the external
// runtime-readiness signal consulted by FullyConfigured; a nil predicate is
// treated as "never attached".
func NewResolver(cat *catalog.Catalog, bag properties.Bag, agentLoaded func() bool) *Resolver {
	if agentLoaded == nil {
		agentLoaded = func() bool { return false }
	}
	return &Resolver{cat: cat, bag: bag, agentLoaded: agentLoaded}
}

// BytecodeVersion returns the classfile version to generate, defaulting to
// bytecode.DefaultVersion when the property is absent.
func (r *Resolver) BytecodeVersion() (int, error) {
	raw := r.bag.Get(KeyBytecodeVersion, strconv.Itoa(bytecode.DefaultVersion))
	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &MalformedPropertyError{Key: KeyBytecodeVersion, Value: raw, Err: err}
	}
	return version, nil
}

// JavaVersion returns the platform name for the resolved bytecode version.
// It never fails: an unparseable or unmapped version renders as the
// unknown-version sentinel.
func (r *Resolver) JavaVersion() string {
	version, err := r.BytecodeVersion()
	if err != nil {
		return bytecode.UnknownVersionName
	}
	return bytecode.VersionName(version)
}

// InputDir returns the directory the original class files are read from.
func (r *Resolver) InputDir() (string, error) {
	return r.requiredProperty(KeyInputDir)
}

// OutputDir returns the directory generated class files are written into.
// When no override is present it delegates to InputDir, so the two stay
// equal by lookup order rather than by a value copied at construction time.
func (r *Resolver) OutputDir() (string, error) {
	if dir, ok := r.bag.Lookup(KeyOutputDir); ok {
		return dir, nil
	}
	return r.InputDir()
}

// Classpath returns the classpath holding the original class files and
// their dependencies.
func (r *Resolver) Classpath() (string, error) {
	return r.requiredProperty(KeyClasspath)
}

// ChangedFiles returns the files changed since the last run, split on the
// platform path-list separator. The second return is false when the
// property is absent, which means "no information" and is distinct from a
// present-but-empty list. Segments are kept as opaque path text.
func (r *Resolver) ChangedFiles() ([]string, bool) {
	raw, ok := r.bag.Lookup(KeyChanged)
	if !ok {
		return nil, false
	}
	return strings.Split(raw, string(os.PathListSeparator)), true
}

// FullyConfigured reports whether the tool is ready to run: every required
// key in the catalog is present in the bag and the external agent signal
// reports attached. It never returns an error; a missing property simply
// yields false.
func (r *Resolver) FullyConfigured() bool {
	return r.hasAllRequiredProperties() && r.agentLoaded()
}

func (r *Resolver) hasAllRequiredProperties() bool {
	for _, key := range r.cat.RequiredKeys() {
		if !r.bag.Has(key) {
			return false
		}
	}
	return true
}

func (r *Resolver) requiredProperty(key string) (string, error) {
	value, ok := r.bag.Lookup(key)
	if !ok {
		return "", &MissingPropertyError{Key: key}
	}
	return value, nil
}
