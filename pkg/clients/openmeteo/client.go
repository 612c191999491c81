package openmeteo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.open-meteo.com/v1"
	// Abuja, used as a central reference point for Nigeria.
	DefaultLatitude  = 9.0765
	DefaultLongitude = 7.3986
	DefaultTimezone  = "Africa/Lagos"

	hourlyFields = "temperature_2m,relative_humidity_2m,precipitation,wind_speed_10m"
)

// Client fetches current conditions for a fixed coordinate.
type Client interface {
	Forecast(ctx context.Context) (*Forecast, error)
}

// Config holds the endpoint and the coordinate to report on.
type Config struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	Timezone  string
	Timeout   time.Duration
}

// Forecast is the subset of the forecast response the site uses. Every field
// is optional in the payload.
type Forecast struct {
	CurrentWeather *CurrentWeather `json:"current_weather"`
	Hourly         *Hourly         `json:"hourly"`
}

// CurrentWeather is the current_weather block.
type CurrentWeather struct {
	Temperature *float64 `json:"temperature"`
	WindSpeed   *float64 `json:"windspeed"`
	WeatherCode *int     `json:"weathercode"`
}

// Hourly is the hourly series block.
type Hourly struct {
	Time               []string  `json:"time"`
	Temperature2m      []float64 `json:"temperature_2m"`
	RelativeHumidity2m []float64 `json:"relative_humidity_2m"`
	Precipitation      []float64 `json:"precipitation"`
	WindSpeed10m       []float64 `json:"wind_speed_10m"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	params     map[string]string
}

// NewClient builds an Open-Meteo client for the configured coordinate.
func NewClient(cfg Config) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	tz := cfg.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(base).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &APIClient{
		httpClient: httpClient,
		params: map[string]string{
			"latitude":        strconv.FormatFloat(cfg.Latitude, 'f', -1, 64),
			"longitude":       strconv.FormatFloat(cfg.Longitude, 'f', -1, 64),
			"current_weather": "true",
			"hourly":          hourlyFields,
			"timezone":        tz,
		},
	}
}

// Forecast requests current weather plus the hourly series.
func (c *APIClient) Forecast(ctx context.Context) (*Forecast, error) {
	result := new(Forecast)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(c.params).
		SetResult(result).
		Get("/forecast")
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather api error: status=%d", resp.StatusCode())
	}

	return result, nil
}
