package config

import "fmt"

// MissingPropertyError reports that a required property is absent from the
// bag. Callers are expected to abort the run and surface the help text next
// to it.
type MissingPropertyError struct {
	Key string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("Missing required property: %s", e.Key)
}

// MalformedPropertyError reports that a present property value failed to
// parse into its expected shape.
type MalformedPropertyError struct {
	Key   string
	Value string
	Err   error
}

func (e *MalformedPropertyError) Error() string {
	return fmt.Sprintf("malformed property %s: %q: %v", e.Key, e.Value, e.Err)
}

func (e *MalformedPropertyError) Unwrap() error {
	return e.Err
}
