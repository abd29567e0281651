package itinerary

import "context"

// SourceOutcome tags how a provider produced its data.
type SourceOutcome string

const (
	// OutcomeLive means the upstream service answered successfully.
	OutcomeLive SourceOutcome = "live"
	// OutcomeNoCredential means no credential was configured and mock data was used.
	OutcomeNoCredential SourceOutcome = "no_credential"
	// OutcomeUpstreamFailure means the upstream call failed and mock data was used.
	OutcomeUpstreamFailure SourceOutcome = "upstream_failure"
)

// Fallback reports whether the outcome carries mock data.
func (o SourceOutcome) Fallback() bool {
	return o != OutcomeLive
}

// WeatherResult is what a WeatherSource hands back. Report is always populated.
type WeatherResult struct {
	Report  WeatherReport
	Outcome SourceOutcome
	Err     error
}

// PhotoResult is what a PhotoSource hands back. Photos may be shorter than requested.
type PhotoResult struct {
	Photos  []Photo
	Outcome SourceOutcome
	Err     error
}

// WeatherSource fetches current weather for a location. Implementations never fail;
// upstream errors are absorbed into a fallback result.
type WeatherSource interface {
	FetchWeather(ctx context.Context, location string) WeatherResult
}

// PhotoSource fetches representative photos for a location and vibe. Implementations
// never fail; upstream errors are absorbed into a fallback result.
type PhotoSource interface {
	FetchPhotos(ctx context.Context, location string, vibe Vibe) PhotoResult
}

// TrendingStore counts how often destinations are requested.
type TrendingStore interface {
	IncrementDestination(ctx context.Context, key, display string) error
	TopDestinations(ctx context.Context, limit int) ([]TrendingDestination, error)
}

// HistoryRepository keeps a log of planned itineraries.
type HistoryRepository interface {
	Insert(ctx context.Context, record HistoryRecord) error
	Recent(ctx context.Context, limit int) ([]HistoryRecord, error)
}
