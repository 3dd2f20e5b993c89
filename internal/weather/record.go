package weather

// NormalizedRecord is the flat, unit-converted record published to the
// delivery stream. Optional groups are embedded pointers so that an absent
// source section leaves no trace in the serialized output, not even nulls.
type NormalizedRecord struct {
	City               string `json:"city"`
	Country            string `json:"country"`
	WeatherCondition   string `json:"weather_condition"`
	WeatherDescription string `json:"weather_description"`

	// EventTimestamp is Unix epoch seconds stamped at transform time so
	// that downstream time partitioning reflects ingestion, not the
	// provider's own observation time.
	EventTimestamp int64 `json:"event_timestamp"`

	*Temperatures
	*WindMetrics
	*SunTimes
}

// Temperatures is present iff the raw observation carried a main section.
type Temperatures struct {
	TemperatureCelsius float64 `json:"temperature_celsius"`
	FeelsLikeCelsius   float64 `json:"feels_like_celsius"`
	TempMinCelsius     float64 `json:"temp_min_celsius"`
	TempMaxCelsius     float64 `json:"temp_max_celsius"`
	HumidityPercent    float64 `json:"humidity_percent"`
	PressureHpa        float64 `json:"pressure_hpa"`
}

// WindMetrics is present iff the raw observation carried a wind section.
// Sub-fields stay individually optional.
type WindMetrics struct {
	WindSpeedMS          *float64 `json:"wind_speed_ms,omitempty"`
	WindDirectionDegrees *float64 `json:"wind_direction_degrees,omitempty"`
}

// SunTimes is present iff the raw observation carried both sunrise and
// sunset timestamps. Values are formatted UTC strings.
type SunTimes struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}
