package app

import (
	"context"
	"errors"
	"fmt"
)

// ErrAgentNotLoaded is returned when every required property is present but
// the external runtime agent has not attached.
var ErrAgentNotLoaded = errors.New("the runtime agent is not loaded")

// Run resolves the configuration for one run. On success it logs the
// resolved values and returns nil; the transformation itself is performed
// by an external collaborator. On any configuration failure it prints the
// help text to the output writer and returns the failure, so the user sees
// both what went wrong and the full set of recognized options.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	inputDir, err := a.resolver.InputDir()
	if err != nil {
		return a.fail(err)
	}
	classpath, err := a.resolver.Classpath()
	if err != nil {
		return a.fail(err)
	}
	version, err := a.resolver.BytecodeVersion()
	if err != nil {
		return a.fail(err)
	}
	if !a.resolver.FullyConfigured() {
		return a.fail(ErrAgentNotLoaded)
	}

	// OutputDir can only fail through InputDir, which succeeded above.
	outputDir, _ := a.resolver.OutputDir()

	a.logger.Info("Configuration resolved.",
		"inputDir", inputDir,
		"outputDir", outputDir,
		"classpath", classpath,
		"bytecodeVersion", version,
		"javaVersion", a.resolver.JavaVersion(),
	)

	if changed, ok := a.resolver.ChangedFiles(); ok {
		a.logger.Info("Incremental run requested.", "changedFiles", len(changed))
	} else {
		a.logger.Debug("No changed-files information provided; full run.")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// fail prints the help text and passes the configuration failure through.
func (a *App) fail(cause error) error {
	help, err := a.resolver.Help()
	if err != nil {
		// A degenerate catalog is a programming error; report both.
		return fmt.Errorf("%w (additionally, help text could not be assembled: %v)", cause, err)
	}
	fmt.Fprintln(a.outW, help)
	a.logger.Error("Configuration is incomplete.", "error", cause)
	return cause
}
