package weather

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"closet/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalService_Deterministic(t *testing.T) {
	service := NewLocalService()
	ctx := context.Background()

	first, err := service.CurrentWeather(ctx, 25.033, 121.565)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := service.CurrentWeather(ctx, 25.033, 121.565)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLocalService_VariesWithCoordinates(t *testing.T) {
	service := NewLocalService()
	ctx := context.Background()

	taipei, err := service.CurrentWeather(ctx, 25.033, 121.565)
	require.NoError(t, err)
	reykjavik, err := service.CurrentWeather(ctx, 64.146, -21.94)
	require.NoError(t, err)

	assert.NotEqual(t, taipei, reykjavik)
}

func TestConditionFromCode(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{0, "Sunny"},
		{2, "Cloudy"},
		{45, "Fog"},
		{61, "Rain"},
		{80, "Rain"},
		{95, "Rain"},
		{71, "Snow"},
		{86, "Snow"},
		{40, "Cloudy"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, conditionFromCode(tt.code), "code=%d", tt.code)
	}
}

func TestOpenMeteoService_CurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "temperature_2m,weather_code", r.URL.Query().Get("current"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{"temperature_2m":7.5,"weather_code":61}}`))
	}))
	defer server.Close()

	service := NewOpenMeteoService(&config.WeatherConfig{
		BaseURL:    server.URL,
		Timeout:    time.Second,
		MaxRetries: 1,
	}, slog.New(slog.DiscardHandler))

	weather, err := service.CurrentWeather(context.Background(), 25.033, 121.565)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, weather.TempC, 0.001)
	assert.Equal(t, "Rain", weather.Condition)
}

func TestOpenMeteoService_FailsAfterRetries(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewOpenMeteoService(&config.WeatherConfig{
		BaseURL:    server.URL,
		Timeout:    time.Second,
		MaxRetries: 2,
	}, slog.New(slog.DiscardHandler))

	_, err := service.CurrentWeather(context.Background(), 25.033, 121.565)
	require.Error(t, err)
	assert.Equal(t, 3, calls) // initial attempt plus two retries
}
