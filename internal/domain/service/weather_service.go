// Package service defines domain-level interfaces for external collaborators.
package service

import (
	"context"

	"closet/internal/domain/entity"
)

// WeatherService resolves current weather from coordinates. The engine only
// ever sees the resolved value; acquisition details stay in infrastructure.
type WeatherService interface {
	// CurrentWeather returns the weather at the given location. Lookup
	// failures surface after a bounded number of retries.
	CurrentWeather(ctx context.Context, latitude, longitude float64) (*entity.Weather, error)
}
