// Package main provides the entry point for the multi-language navigation server.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/tilboerner/pico-multilanguage/internal/di"
	"github.com/tilboerner/pico-multilanguage/internal/logger"
)

func main() {
	injector := di.NewContainer(os.Args[1:])

	// Bootstrap all services; this starts the HTTP server.
	if err := di.Bootstrap(injector); err != nil {
		bootLog, logErr := do.Invoke[*logger.Logger](injector)
		if logErr != nil {
			// Config did not load, so fall back to a plain stderr logger.
			bootLog = logger.New(logger.Config{Writer: os.Stderr})
		}
		bootLog.Fatal("Failed to bootstrap server", "error", err)
	}

	log := do.MustInvoke[*logger.Logger](injector)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	// The container shuts services down in reverse dependency order.
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	log.Info("Server stopped")
}
