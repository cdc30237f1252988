package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/lambdaport/internal/app"
	"github.com/vk/lambdaport/internal/config"
	"github.com/vk/lambdaport/internal/properties"
)

// EnvPrefix marks the environment variables that become properties:
// LAMBDAPORT_INPUT_DIR turns into lambdaport.inputDir, and so on.
const EnvPrefix = "LAMBDAPORT_"

// Environment variables consumed directly rather than as properties.
const (
	envAgent     = EnvPrefix + "AGENT"
	envLogLevel  = EnvPrefix + "LOG_LEVEL"
	envLogFormat = EnvPrefix + "LOG_FORMAT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Run assembles one run's configuration from environ and executes it. Help
// text goes to outW, log output to logW. Configuration failures come back
// as an ExitError with code 1.
func Run(ctx context.Context, outW, logW io.Writer, environ []string) error {
	slog.Debug("Assembling property bag from environment.")
	bag := properties.FromEnviron(environ, EnvPrefix, config.Prefix)

	// The agent signal is an opaque external fact; this process only
	// consumes it. Anything unparseable counts as "not attached".
	attached, _ := strconv.ParseBool(envValue(environ, envAgent))

	lambdaportApp := app.NewApp(outW, logW, &app.Config{
		Bag:         bag,
		AgentLoaded: func() bool { return attached },
		LogLevel:    strings.ToLower(envValue(environ, envLogLevel)),
		LogFormat:   strings.ToLower(envValue(environ, envLogFormat)),
	})

	if err := lambdaportApp.Run(ctx); err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	return nil
}

// envValue returns the value of the named variable from environ, with later
// entries winning, or "" when it is unset.
func envValue(environ []string, name string) string {
	value := ""
	for _, entry := range environ {
		if v, ok := strings.CutPrefix(entry, name+"="); ok {
			value = v
		}
	}
	return value
}
