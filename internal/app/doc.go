// Package app contains the core run lifecycle. It wires the property bag,
// the parameter catalog, and the agent signal into a config.Resolver, and
// either reports the resolved configuration or surfaces the help text next
// to the failure. It is decoupled from any specific entrypoint.
package app
