package app

import (
	"io"
	"log/slog"

	"github.com/vk/lambdaport/internal/config"
	"github.com/vk/lambdaport/internal/properties"
)

// Config holds everything an App needs for one run: the fully materialized
// property bag, the external agent-attachment signal, and logging options.
type Config struct {
	Bag         properties.Bag
	AgentLoaded func() bool

	LogFormat string
	LogLevel  string
}

// App encapsulates one configuration-resolution run: the resolver, an
// isolated logger, and the writer the help text goes to.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	resolver *config.Resolver
}

// NewApp builds an App around the default parameter catalog. Help text is
// written to outW; log output goes to logW so the help stays machine-clean.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	resolver := config.NewResolver(config.DefaultCatalog(), appConfig.Bag, appConfig.AgentLoaded)
	logger.Debug("Resolver constructed.", "properties", len(appConfig.Bag))

	return &App{
		outW:     outW,
		logger:   logger,
		resolver: resolver,
	}
}

// Resolver returns the application's resolver. This is primarily for testing.
func (a *App) Resolver() *config.Resolver {
	return a.resolver
}
