// Package weather resolves current weather from coordinates. The engine
// itself never performs the lookup; it only consumes the resolved value.
package weather

import (
	"log/slog"

	"closet/config"
	"closet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in configuration.
const (
	ProviderLocal     = "local"
	ProviderOpenMeteo = "openmeteo"
)

// ServiceParams holds dependencies for WeatherService, injected by Fx
type ServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewWeatherService creates a WeatherService based on configuration.
// Without configuration the deterministic local provider is used, so the
// service stays runnable with no external dependency.
func NewWeatherService(params ServiceParams) (service.WeatherService, error) {
	cfg := params.Config.Weather

	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderLocal {
		params.Logger.Info("Using local weather provider")

		return NewLocalService(), nil
	}

	switch cfg.Provider {
	case ProviderOpenMeteo:
		params.Logger.Info("Using Open-Meteo weather provider",
			slog.String("baseUrl", cfg.BaseURL),
		)

		return NewOpenMeteoService(cfg, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown weather provider: %s", cfg.Provider)
	}
}
