// Package providers contains dependency injection providers for the navigation server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/tilboerner/pico-multilanguage/internal/config"
	"github.com/tilboerner/pico-multilanguage/internal/logger"
)

// Args are the command-line arguments (without the program name).
type Args []string

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	args := do.MustInvoke[Args](i)
	return config.LoadConfig(args)
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting navigation server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"default_language", cfg.Site.DefaultLanguage,
	)

	return log, nil
}
