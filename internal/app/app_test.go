package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/lambdaport/internal/config"
	"github.com/vk/lambdaport/internal/properties"
)

func completeBag() properties.Bag {
	return properties.Bag{
		config.KeyInputDir:  "/src",
		config.KeyClasspath: "/src:/libs/a.jar",
	}
}

func TestRun_FullyConfigured(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := NewApp(out, logs, &Config{
		Bag:         completeBag(),
		AgentLoaded: func() bool { return true },
		LogFormat:   "text",
		LogLevel:    "info",
	})

	err := a.Run(context.Background())
	require.NoError(t, err)

	// Help must not be printed on the happy path; the summary is logged.
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "Configuration resolved.")
	assert.Contains(t, logs.String(), "Java 7")
}

func TestRun_MissingRequiredProperty(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	a := NewApp(out, &bytes.Buffer{}, &Config{
		Bag:         properties.Bag{config.KeyClasspath: "/libs"},
		AgentLoaded: func() bool { return true },
	})

	err := a.Run(context.Background())
	require.Error(t, err)

	var missing *config.MissingPropertyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, config.KeyInputDir, missing.Key)

	// The help text accompanies the failure.
	assert.Contains(t, out.String(), "Usage: java ")
	assert.Contains(t, out.String(), "-D"+config.KeyInputDir+"=?")
}

func TestRun_MalformedBytecodeVersion(t *testing.T) {
	t.Parallel()

	bag := completeBag()
	bag[config.KeyBytecodeVersion] = "not-a-number"

	out := &bytes.Buffer{}
	a := NewApp(out, &bytes.Buffer{}, &Config{
		Bag:         bag,
		AgentLoaded: func() bool { return true },
	})

	err := a.Run(context.Background())
	require.Error(t, err)

	var malformed *config.MalformedPropertyError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, out.String(), "Usage: java ")
}

func TestRun_AgentNotLoaded(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	a := NewApp(out, &bytes.Buffer{}, &Config{
		Bag:         completeBag(),
		AgentLoaded: func() bool { return false },
	})

	err := a.Run(context.Background())
	require.ErrorIs(t, err, ErrAgentNotLoaded)
	assert.Contains(t, out.String(), "Usage: java ")
}

func TestRun_ChangedFilesAreReported(t *testing.T) {
	t.Parallel()

	bag := completeBag()
	bag[config.KeyChanged] = "/src/A.class"

	logs := &bytes.Buffer{}
	a := NewApp(&bytes.Buffer{}, logs, &Config{
		Bag:         bag,
		AgentLoaded: func() bool { return true },
		LogLevel:    "debug",
	})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, logs.String(), "Incremental run requested.")
}
