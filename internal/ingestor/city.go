package ingestor

// fallbackCities is the pool a city is drawn from when neither the trigger
// input nor the configuration names one.
var fallbackCities = []string{
	"London", "New York", "Paris", "Berlin", "Tokyo",
	"Sydney", "Cairo", "Toronto", "Istanbul",
}

// ResolveCity picks the target city: trigger input first, then the configured
// default, then a random fallback. A priority chain, not a merge.
func ResolveCity(triggerCity, defaultCity string, randIndex func(n int) int) string {
	if triggerCity != "" {
		return triggerCity
	}
	if defaultCity != "" {
		return defaultCity
	}
	return fallbackCities[randIndex(len(fallbackCities))]
}
