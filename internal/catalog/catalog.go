package catalog

import (
	"log/slog"
	"strings"
)

// Entry declares one recognized configuration parameter.
type Entry struct {
	Key         string
	Required    bool
	Description []string
}

// Catalog is the immutable registry of recognized parameters. Registration
// order is preserved and duplicate keys are kept as-is; there is no removal
// or mutation once Build has returned.
type Catalog struct {
	requiredKeys []string
	requiredHelp []string
	optionalHelp []string
}

// Builder accumulates parameter declarations in order. It is not safe for
// concurrent use; catalogs are built during single-threaded startup.
type Builder struct {
	cat Catalog
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Required declares a parameter whose absence makes the configuration
// invalid. The key joins the required-key list and its help block joins the
// required-help list.
func (b *Builder) Required(key string, description ...string) *Builder {
	slog.Debug("Registering required parameter.", "key", key)
	b.cat.requiredKeys = append(b.cat.requiredKeys, key)
	b.cat.requiredHelp = append(b.cat.requiredHelp, FormatHelp(key, description...))
	return b
}

// Optional declares a parameter the tool can run without. Only its help
// block is recorded.
func (b *Builder) Optional(key string, description ...string) *Builder {
	slog.Debug("Registering optional parameter.", "key", key)
	b.cat.optionalHelp = append(b.cat.optionalHelp, FormatHelp(key, description...))
	return b
}

// Build returns the accumulated Catalog. The Builder must not be reused
// afterwards.
func (b *Builder) Build() *Catalog {
	cat := b.cat
	b.cat = Catalog{}
	return &cat
}

// New builds a Catalog directly from an ordered list of entries.
func New(entries []Entry) *Catalog {
	b := NewBuilder()
	for _, e := range entries {
		if e.Required {
			b.Required(e.Key, e.Description...)
		} else {
			b.Optional(e.Key, e.Description...)
		}
	}
	return b.Build()
}

// RequiredKeys returns the required keys in registration order.
func (c *Catalog) RequiredKeys() []string {
	return append([]string(nil), c.requiredKeys...)
}

// RequiredHelp returns the help blocks of the required parameters in
// registration order.
func (c *Catalog) RequiredHelp() []string {
	return append([]string(nil), c.requiredHelp...)
}

// OptionalHelp returns the help blocks of the optional parameters in
// registration order.
func (c *Catalog) OptionalHelp() []string {
	return append([]string(nil), c.optionalHelp...)
}

// FormatHelp renders the help block for one parameter: the key indented two
// spaces, each description line indented six, terminated by a newline. It
// depends on nothing but its arguments.
func FormatHelp(key string, description ...string) string {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(key)
	sb.WriteString("\n")
	for _, line := range description {
		sb.WriteString("      ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
