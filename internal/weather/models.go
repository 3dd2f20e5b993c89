package weather

// RawObservation is the provider's current-weather response. Optional
// sections are pointers so their absence survives decoding.
type RawObservation struct {
	Name    string      `json:"name"`
	Weather []Condition `json:"weather"`
	Main    *Metrics    `json:"main,omitempty"`
	Wind    *Wind       `json:"wind,omitempty"`
	Sys     Sys         `json:"sys"`
}

// Condition is one entry of the provider's weather array.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Metrics is the provider's main-metrics section. Temperatures are Kelvin.
type Metrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  float64 `json:"humidity"`
	Pressure  float64 `json:"pressure"`
}

// Wind sub-fields are individually optional within a present wind section.
type Wind struct {
	Speed *float64 `json:"speed,omitempty"`
	Deg   *float64 `json:"deg,omitempty"`
}

type Sys struct {
	Country string `json:"country"`
	Sunrise *int64 `json:"sunrise,omitempty"`
	Sunset  *int64 `json:"sunset,omitempty"`
}
