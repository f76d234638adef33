package weather

import "time"

// Reading is a current-conditions observation.
type Reading struct {
	TemperatureF float64   `json:"temperature"`
	Condition    string    `json:"condition"`
	ObservedAt   time.Time `json:"observedAt"`
	Source       string    `json:"source"`
}

// Config controls caching of upstream readings.
type Config struct {
	// CacheKey identifies the configured location in the cache.
	CacheKey string
	CacheTTL time.Duration
}
