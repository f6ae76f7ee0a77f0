package constants

import "time"

// Redis cache keys
const (
	// KeyActiveTrip holds the JSON of the currently open active trip.
	// The open trip is globally exclusive, so the key is not scoped.
	KeyActiveTrip = "carshare:active_trip"

	// KeyRatePerKm holds the parsed cost_per_km setting.
	KeyRatePerKm = "carshare:rate_per_km"

	// KeyGroupCostsPrefix + groupID holds a cached group cost summary.
	KeyGroupCostsPrefix = "carshare:costs:group:"

	// KeyDriverCostsPrefix + groupID holds cached per-driver summaries.
	KeyDriverCostsPrefix = "carshare:costs:drivers:"
)

// Cache lifetimes
const (
	ActiveTripTTL = 24 * time.Hour
	RatePerKmTTL  = 5 * time.Minute
	CostsTTL      = 10 * time.Minute
)
