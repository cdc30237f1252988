package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FullyConfiguredEnvironment(t *testing.T) {
	t.Parallel()

	environ := []string{
		"LAMBDAPORT_INPUT_DIR=/src",
		"LAMBDAPORT_CLASSPATH=/src:/libs/a.jar",
		"LAMBDAPORT_AGENT=true",
		"PATH=/usr/bin",
	}

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	err := Run(context.Background(), out, logs, environ)
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "Configuration resolved.")
}

func TestRun_MissingPropertyYieldsExitCodeOne(t *testing.T) {
	t.Parallel()

	environ := []string{
		"LAMBDAPORT_CLASSPATH=/libs",
		"LAMBDAPORT_AGENT=true",
	}

	out := &bytes.Buffer{}
	err := Run(context.Background(), out, &bytes.Buffer{}, environ)
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected an *ExitError, got %T", err)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "Missing required property")
	assert.Contains(t, out.String(), "Usage: java ")
}

func TestRun_AgentSignal(t *testing.T) {
	t.Parallel()

	base := []string{
		"LAMBDAPORT_INPUT_DIR=/src",
		"LAMBDAPORT_CLASSPATH=/src",
	}

	t.Run("unset means not attached", func(t *testing.T) {
		t.Parallel()
		err := Run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, base)
		require.Error(t, err)
	})

	t.Run("garbage means not attached", func(t *testing.T) {
		t.Parallel()
		environ := append(append([]string(nil), base...), "LAMBDAPORT_AGENT=maybe")
		err := Run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, environ)
		require.Error(t, err)
	})

	t.Run("truthy means attached", func(t *testing.T) {
		t.Parallel()
		environ := append(append([]string(nil), base...), "LAMBDAPORT_AGENT=1")
		err := Run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, environ)
		require.NoError(t, err)
	})
}

func TestEnvValue(t *testing.T) {
	t.Parallel()

	environ := []string{"A=1", "B=2", "A=3"}
	assert.Equal(t, "3", envValue(environ, "A"))
	assert.Equal(t, "2", envValue(environ, "B"))
	assert.Equal(t, "", envValue(environ, "C"))
}
