package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"closet/config"
	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL    = "https://api.open-meteo.com"
	defaultTimeout    = 3 * time.Second
	defaultMaxRetries = 2
	retryBaseBackoff  = 200 * time.Millisecond
)

// openMeteoService resolves weather through the Open-Meteo forecast API.
type openMeteoService struct {
	baseURL    string
	client     *http.Client
	maxRetries int
	logger     *slog.Logger
}

// NewOpenMeteoService creates the HTTP-backed weather provider with a
// bounded per-request timeout and bounded retries.
func NewOpenMeteoService(cfg *config.WeatherConfig, logger *slog.Logger) service.WeatherService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}

	return &openMeteoService{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// forecastResponse mirrors the subset of the Open-Meteo payload we read.
type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// CurrentWeather fetches current conditions, retrying transient failures
// with backoff before surfacing the dependency error.
func (s *openMeteoService) CurrentWeather(ctx context.Context, latitude, longitude float64) (*entity.Weather, error) {
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := retryBaseBackoff << (attempt - 1)
			s.logger.Warn("Retrying weather lookup",
				slog.Int("attempt", attempt),
				slog.Duration("backoff", backoff),
				slog.String("error", lastErr.Error()),
			)

			select {
			case <-ctx.Done():
				return nil, errors.Wrap(ctx.Err(), "weather lookup cancelled")
			case <-time.After(backoff):
			}
		}

		weather, err := s.fetch(ctx, latitude, longitude)
		if err == nil {
			return weather, nil
		}
		lastErr = err
	}

	return nil, domainerrors.ErrWeatherUnavailable.WrapMessage(lastErr.Error())
}

func (s *openMeteoService) fetch(ctx context.Context, latitude, longitude float64) (*entity.Weather, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", latitude))
	query.Set("longitude", fmt.Sprintf("%.4f", longitude))
	query.Set("current", "temperature_2m,weather_code")

	endpoint := fmt.Sprintf("%s/v1/forecast?%s", s.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build weather request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "weather request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode weather response")
	}

	return &entity.Weather{
		TempC:     payload.Current.Temperature,
		Condition: conditionFromCode(payload.Current.WeatherCode),
	}, nil
}

// conditionFromCode maps WMO weather interpretation codes to the
// categorical descriptors the scorer understands.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "Sunny"
	case code <= 3:
		return "Cloudy"
	case code == 45 || code == 48:
		return "Fog"
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82) || code >= 95:
		return "Rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "Snow"
	default:
		return "Cloudy"
	}
}
