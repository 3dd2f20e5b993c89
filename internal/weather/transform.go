package weather

import (
	"fmt"
	"math"
	"time"
)

const sunTimeLayout = "2006-01-02 15:04:05 UTC"

// MissingFieldError reports a raw observation lacking one of the fields every
// record must carry.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("raw observation is missing required field %q", e.Field)
}

// Transform flattens a raw observation into a NormalizedRecord. It performs
// no I/O; now supplies the event timestamp so callers control the clock.
func Transform(raw RawObservation, now time.Time) (NormalizedRecord, error) {
	if raw.Name == "" {
		return NormalizedRecord{}, &MissingFieldError{Field: "name"}
	}
	if raw.Sys.Country == "" {
		return NormalizedRecord{}, &MissingFieldError{Field: "sys.country"}
	}
	if len(raw.Weather) == 0 {
		return NormalizedRecord{}, &MissingFieldError{Field: "weather"}
	}

	record := NormalizedRecord{
		City:               raw.Name,
		Country:            raw.Sys.Country,
		WeatherCondition:   raw.Weather[0].Main,
		WeatherDescription: raw.Weather[0].Description,
		EventTimestamp:     now.Unix(),
	}

	if raw.Main != nil {
		record.Temperatures = &Temperatures{
			TemperatureCelsius: kelvinToCelsius(raw.Main.Temp),
			FeelsLikeCelsius:   kelvinToCelsius(raw.Main.FeelsLike),
			TempMinCelsius:     kelvinToCelsius(raw.Main.TempMin),
			TempMaxCelsius:     kelvinToCelsius(raw.Main.TempMax),
			HumidityPercent:    raw.Main.Humidity,
			PressureHpa:        raw.Main.Pressure,
		}
	}

	if raw.Wind != nil {
		record.WindMetrics = &WindMetrics{
			WindSpeedMS:          raw.Wind.Speed,
			WindDirectionDegrees: raw.Wind.Deg,
		}
	}

	if raw.Sys.Sunrise != nil && raw.Sys.Sunset != nil {
		record.SunTimes = &SunTimes{
			Sunrise: formatSunTime(*raw.Sys.Sunrise),
			Sunset:  formatSunTime(*raw.Sys.Sunset),
		}
	}

	return record, nil
}

// kelvinToCelsius converts and rounds to two decimal places.
func kelvinToCelsius(kelvin float64) float64 {
	return math.Round((kelvin-273.15)*100) / 100
}

func formatSunTime(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(sunTimeLayout)
}
