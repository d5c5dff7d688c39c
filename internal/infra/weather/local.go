package weather

import (
	"context"
	"math"

	"closet/internal/domain/entity"
	"closet/internal/domain/service"
)

// localService derives weather deterministically from the coordinates.
// It exists for development and tests: identical coordinates always yield
// identical weather, so recommendations stay reproducible.
type localService struct{}

// NewLocalService creates the deterministic local weather provider.
func NewLocalService() service.WeatherService {
	return &localService{}
}

// CurrentWeather maps coordinates onto a temperature between 8 and 22
// degrees and flips to rain on roughly every third latitude bucket.
func (s *localService) CurrentWeather(_ context.Context, latitude, longitude float64) (*entity.Weather, error) {
	latBucket := int(math.Abs(latitude * 100))
	lonBucket := int(math.Abs(longitude * 100))

	tempC := float64(15 + latBucket%15 - lonBucket%7)

	condition := "Sunny"
	if latBucket%3 == 0 {
		condition = "Rain"
	}

	return &entity.Weather{
		TempC:     tempC,
		Condition: condition,
	}, nil
}
