//go:build wireinject
// +build wireinject

package di

import (
	"FinCast/pkg/config"
	"FinCast/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Domain collaborators
		ProvideHistorySource,
		ProvideForecastProvider,
		ProvideCache,
		ProvideRateLimiter,

		// Use case and transport
		ProvideForecaster,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
