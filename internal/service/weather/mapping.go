package weather

import (
	"github.com/olupoagric/storefront/internal/domain/models"
	"github.com/olupoagric/storefront/pkg/clients/openmeteo"
)

// FromForecast maps a forecast onto the card. Each missing field falls back
// to its default on its own.
func FromForecast(f *openmeteo.Forecast) models.Weather {
	w := models.DefaultWeather()
	if f == nil {
		return w
	}

	var current openmeteo.CurrentWeather
	if f.CurrentWeather != nil {
		current = *f.CurrentWeather
	}
	var hourly openmeteo.Hourly
	if f.Hourly != nil {
		hourly = *f.Hourly
	}

	switch {
	case current.Temperature != nil:
		w.Temperature = *current.Temperature
	case len(hourly.Temperature2m) > 0:
		w.Temperature = hourly.Temperature2m[0]
	}

	switch {
	case current.WindSpeed != nil:
		w.WindSpeed = *current.WindSpeed
	case len(hourly.WindSpeed10m) > 0:
		w.WindSpeed = hourly.WindSpeed10m[0]
	}

	if len(hourly.RelativeHumidity2m) > 0 {
		w.Humidity = hourly.RelativeHumidity2m[0]
	}
	if len(hourly.Precipitation) > 0 {
		w.Rainfall = Rainfall(hourly.Precipitation[0])
	}
	if current.WeatherCode != nil {
		w.Condition = Condition(*current.WeatherCode)
	}

	return w
}

// Condition names a WMO weather code.
func Condition(code int) string {
	switch code {
	case 0:
		return "Clear Sky"
	case 1, 2, 3:
		return "Partly Cloudy"
	case 45, 48:
		return "Foggy"
	case 51, 53, 55, 61, 63, 65:
		return "Rainy"
	case 71, 73, 75:
		return "Snow"
	case 80, 81, 82:
		return "Showers"
	case 95, 96, 99:
		return "Thunderstorm"
	default:
		return "Clear"
	}
}

// Rainfall buckets an hourly precipitation amount in millimetres.
func Rainfall(mm float64) string {
	switch {
	case mm <= 0:
		return "None"
	case mm < 2:
		return "Light"
	case mm < 10:
		return "Moderate"
	default:
		return "Heavy"
	}
}
