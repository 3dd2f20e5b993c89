package weather

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func fullObservation() RawObservation {
	return RawObservation{
		Name: "Stockholm",
		Weather: []Condition{
			{Main: "Clear", Description: "clear sky"},
		},
		Main: &Metrics{
			Temp:      300.15,
			FeelsLike: 301.65,
			TempMin:   273.15,
			TempMax:   305.15,
			Humidity:  45,
			Pressure:  1012,
		},
		Wind: &Wind{Speed: f64(3.6), Deg: f64(220)},
		Sys: Sys{
			Country: "SE",
			Sunrise: i64(1700000000),
			Sunset:  i64(1700040000),
		},
	}
}

func TestTransformFullObservation(t *testing.T) {
	now := time.Unix(1710000000, 0).UTC()

	record, err := Transform(fullObservation(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.City != "Stockholm" || record.Country != "SE" {
		t.Fatalf("unexpected city/country: %s/%s", record.City, record.Country)
	}
	if record.WeatherCondition != "Clear" || record.WeatherDescription != "clear sky" {
		t.Fatalf("unexpected condition: %s/%s", record.WeatherCondition, record.WeatherDescription)
	}
	if record.EventTimestamp != 1710000000 {
		t.Fatalf("expected event_timestamp %d, got %d", 1710000000, record.EventTimestamp)
	}

	if record.Temperatures == nil || record.WindMetrics == nil || record.SunTimes == nil {
		t.Fatalf("expected all optional groups to be present")
	}
	if record.Temperatures.HumidityPercent != 45 || record.Temperatures.PressureHpa != 1012 {
		t.Fatalf("humidity/pressure should copy through unmodified")
	}
	if *record.WindMetrics.WindSpeedMS != 3.6 || *record.WindMetrics.WindDirectionDegrees != 220 {
		t.Fatalf("wind values should copy through unmodified")
	}

	// Serialized form must not contain null placeholders.
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Fatalf("serialized record contains nulls: %s", data)
	}
}

func TestTransformKelvinToCelsius(t *testing.T) {
	record, err := Transform(fullObservation(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Temperatures.TemperatureCelsius != 27.00 {
		t.Fatalf("300.15 K should convert to 27.00 C, got %v", record.Temperatures.TemperatureCelsius)
	}
	if record.Temperatures.TempMinCelsius != 0.00 {
		t.Fatalf("273.15 K should convert to 0.00 C, got %v", record.Temperatures.TempMinCelsius)
	}
	if record.Temperatures.FeelsLikeCelsius != 28.50 {
		t.Fatalf("301.65 K should convert to 28.50 C, got %v", record.Temperatures.FeelsLikeCelsius)
	}
}

func TestTransformSunTimes(t *testing.T) {
	record, err := Transform(fullObservation(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.SunTimes.Sunrise != "2023-11-14 22:13:20 UTC" {
		t.Fatalf("unexpected sunrise: %s", record.SunTimes.Sunrise)
	}
	if record.SunTimes.Sunset != "2023-11-15 09:20:00 UTC" {
		t.Fatalf("unexpected sunset: %s", record.SunTimes.Sunset)
	}
}

func TestTransformOmitsAbsentSections(t *testing.T) {
	raw := fullObservation()
	raw.Main = nil
	raw.Wind = nil
	raw.Sys.Sunrise = nil

	record, err := Transform(raw, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Temperatures != nil || record.WindMetrics != nil || record.SunTimes != nil {
		t.Fatalf("expected all optional groups to be absent")
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{"wind_speed_ms", "temperature_celsius", "sunrise", "null"} {
		if strings.Contains(string(data), field) {
			t.Fatalf("serialized record should not mention %q: %s", field, data)
		}
	}
}

func TestTransformPartialWindSection(t *testing.T) {
	raw := fullObservation()
	raw.Wind = &Wind{Speed: f64(5.1)}

	record, err := Transform(raw, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.WindMetrics == nil || record.WindMetrics.WindSpeedMS == nil {
		t.Fatalf("expected wind speed to be present")
	}
	if record.WindMetrics.WindDirectionDegrees != nil {
		t.Fatalf("expected wind direction to be absent")
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "wind_direction_degrees") {
		t.Fatalf("absent wind direction should be omitted entirely: %s", data)
	}
}

func TestTransformSunTimesRequireBothTimestamps(t *testing.T) {
	raw := fullObservation()
	raw.Sys.Sunset = nil

	record, err := Transform(raw, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.SunTimes != nil {
		t.Fatalf("sun times should be absent when sunset is missing")
	}
}

func TestTransformMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RawObservation)
	}{
		{"empty weather array", func(r *RawObservation) { r.Weather = nil }},
		{"missing name", func(r *RawObservation) { r.Name = "" }},
		{"missing country", func(r *RawObservation) { r.Sys.Country = "" }},
	}

	for _, tc := range cases {
		raw := fullObservation()
		tc.mutate(&raw)

		_, err := Transform(raw, time.Now())
		if err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}

		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("%s: expected MissingFieldError, got %v", tc.name, err)
		}
	}
}
