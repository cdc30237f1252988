package properties

import (
	"log/slog"
	"strings"
)

// Bag is an opaque string-to-string property mapping. A nil Bag behaves
// like an empty one.
type Bag map[string]string

// Lookup reports the value for key and whether it was present.
func (b Bag) Lookup(key string) (string, bool) {
	v, ok := b[key]
	return v, ok
}

// Get returns the value for key, or fallback when the key is absent.
func (b Bag) Get(key, fallback string) string {
	if v, ok := b[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether key is present in the bag.
func (b Bag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// FromEnviron assembles a Bag from environment entries of the form
// "NAME=value". Variables starting with envPrefix are translated onto
// property keys under keyPrefix: the prefix is stripped and the remaining
// SNAKE_CASE name becomes camelCase, so with envPrefix "LAMBDAPORT_" and
// keyPrefix "lambdaport." the variable LAMBDAPORT_INPUT_DIR becomes the
// property lambdaport.inputDir. Other variables are ignored; later entries
// win, matching environ semantics.
func FromEnviron(environ []string, envPrefix, keyPrefix string) Bag {
	bag := Bag{}
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, envPrefix) {
			continue
		}
		key := keyPrefix + camelCase(strings.TrimPrefix(name, envPrefix))
		slog.Debug("Collected property from environment.", "variable", name, "key", key)
		bag[key] = value
	}
	return bag
}

// camelCase converts a SNAKE_CASE environment name to camelCase.
func camelCase(name string) string {
	words := strings.Split(strings.ToLower(name), "_")
	for i := 1; i < len(words); i++ {
		if words[i] == "" {
			continue
		}
		words[i] = strings.ToUpper(words[i][:1]) + words[i][1:]
	}
	return strings.Join(words, "")
}
