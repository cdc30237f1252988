package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_IncompleteEnvironmentPrintsHelp(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An environment with no lambdaport properties at all is the first-use
	// experience: the run must fail and the help text must reach stdout.
	environ := []string{"PATH=/usr/bin"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, environ)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "Missing required property")
	require.Contains(t, out.String(), "Usage: java ", "expected help text on stdout")
}

func TestRun_CompleteEnvironment(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	environ := []string{
		"LAMBDAPORT_INPUT_DIR=/src",
		"LAMBDAPORT_CLASSPATH=/src:/libs/a.jar",
		"LAMBDAPORT_AGENT=true",
	}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, environ)

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, out.String(), "help must not be printed on success")
}
