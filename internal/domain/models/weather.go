package models

// Weather is the current-conditions summary shown next to the farming calendar.
type Weather struct {
	Temperature float64 `json:"temperature"` // °C
	Condition   string  `json:"condition"`
	Humidity    float64 `json:"humidity"`   // percent
	WindSpeed   float64 `json:"wind_speed"` // km/h
	Rainfall    string  `json:"rainfall"`
}

// Fallback values used whenever a field is missing or the weather call fails.
const (
	DefaultTemperature = 28
	DefaultCondition   = "Partly Cloudy"
	DefaultHumidity    = 75
	DefaultWindSpeed   = 12
	DefaultRainfall    = "Moderate"
)

// DefaultWeather returns the complete fallback conditions.
func DefaultWeather() Weather {
	return Weather{
		Temperature: DefaultTemperature,
		Condition:   DefaultCondition,
		Humidity:    DefaultHumidity,
		WindSpeed:   DefaultWindSpeed,
		Rainfall:    DefaultRainfall,
	}
}
