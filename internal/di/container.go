// Package di provides dependency injection configuration for the navigation server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/tilboerner/pico-multilanguage/internal/config"
	"github.com/tilboerner/pico-multilanguage/internal/di/providers"
	"github.com/tilboerner/pico-multilanguage/internal/logger"
	"github.com/tilboerner/pico-multilanguage/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
// args are the command-line arguments without the program name.
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, providers.Args(args))

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Business services
	do.Provide(injector, providers.ProvideSiteService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services, which starts the HTTP server.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.SiteService](injector); err != nil {
		return err
	}

	_, err := do.Invoke[*providers.HTTPServerHandle](injector)
	return err
}
