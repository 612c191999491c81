package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "9.0765", q.Get("latitude"))
		assert.Equal(t, "7.3986", q.Get("longitude"))
		assert.Equal(t, "true", q.Get("current_weather"))
		assert.Equal(t, hourlyFields, q.Get("hourly"))
		assert.Equal(t, "Africa/Lagos", q.Get("timezone"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current_weather": {"temperature": 31.4, "windspeed": 9.2, "weathercode": 2},
			"hourly": {
				"time": ["2026-10-14T00:00"],
				"temperature_2m": [24.1],
				"relative_humidity_2m": [81],
				"precipitation": [0.4],
				"wind_speed_10m": [7.5]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Latitude: DefaultLatitude, Longitude: DefaultLongitude})
	fc, err := client.Forecast(context.Background())
	require.NoError(t, err)

	require.NotNil(t, fc.CurrentWeather)
	require.NotNil(t, fc.CurrentWeather.Temperature)
	assert.InDelta(t, 31.4, *fc.CurrentWeather.Temperature, 1e-9)
	require.NotNil(t, fc.CurrentWeather.WeatherCode)
	assert.Equal(t, 2, *fc.CurrentWeather.WeatherCode)
	require.NotNil(t, fc.Hourly)
	assert.Equal(t, []float64{81}, fc.Hourly.RelativeHumidity2m)
	assert.Equal(t, []float64{0.4}, fc.Hourly.Precipitation)
}

func TestForecast_MissingBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current_weather": {"temperature": 27}}`))
	}))
	defer server.Close()

	fc, err := NewClient(Config{BaseURL: server.URL}).Forecast(context.Background())
	require.NoError(t, err)
	require.NotNil(t, fc.CurrentWeather)
	assert.Nil(t, fc.CurrentWeather.WindSpeed)
	assert.Nil(t, fc.CurrentWeather.WeatherCode)
	assert.Nil(t, fc.Hourly)
}

func TestForecast_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(Config{BaseURL: server.URL}).Forecast(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=503")
}
