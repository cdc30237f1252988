// Package cli handles process-level concerns: collecting the property bag
// and the external agent signal from the environment, running one
// configuration resolution, and mapping failures onto exit codes. The tool
// is driven entirely by properties, so there is no flag parsing here.
package cli
