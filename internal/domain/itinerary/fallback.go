package itinerary

import "context"

// MockPhotoURL is the header image used whenever live photos are unavailable.
const MockPhotoURL = "https://images.unsplash.com/photo-1512453979798-5ea904f18f33?auto=format&fit=crop&w=800&q=60"

// MockPhotoCount is the number of mock photos handed out by the fallbacks.
const MockPhotoCount = 3

// Credits used by the two photo fallbacks.
const (
	MockCreditNoCredential    = "Mock User"
	MockCreditUpstreamFailure = "Unknown"
)

// NoCredentialWeather is returned when no weather credential is configured.
func NoCredentialWeather(err error) WeatherResult {
	return WeatherResult{
		Report:  WeatherReport{TemperatureC: 20, Condition: "Clear", Description: "clear sky"},
		Outcome: OutcomeNoCredential,
		Err:     err,
	}
}

// UpstreamFailureWeather is returned when the live weather call fails.
func UpstreamFailureWeather(err error) WeatherResult {
	return WeatherResult{
		Report:  WeatherReport{TemperatureC: 15, Condition: "Clouds", Description: "scattered clouds"},
		Outcome: OutcomeUpstreamFailure,
		Err:     err,
	}
}

// NoCredentialPhotos is returned when no photo credential is configured.
func NoCredentialPhotos(err error) PhotoResult {
	return PhotoResult{Photos: mockPhotos(MockCreditNoCredential), Outcome: OutcomeNoCredential, Err: err}
}

// UpstreamFailurePhotos is returned when the live photo search fails.
func UpstreamFailurePhotos(err error) PhotoResult {
	return PhotoResult{Photos: mockPhotos(MockCreditUpstreamFailure), Outcome: OutcomeUpstreamFailure, Err: err}
}

func mockPhotos(credit string) []Photo {
	photos := make([]Photo, MockPhotoCount)
	for i := range photos {
		photos[i] = Photo{URL: MockPhotoURL, Credit: credit}
	}
	return photos
}

// MockWeatherSource serves the no-credential snapshot without any I/O.
type MockWeatherSource struct{}

// FetchWeather implements WeatherSource.
func (MockWeatherSource) FetchWeather(context.Context, string) WeatherResult {
	return NoCredentialWeather(nil)
}

// MockPhotoSource serves the no-credential photos without any I/O.
type MockPhotoSource struct{}

// FetchPhotos implements PhotoSource.
func (MockPhotoSource) FetchPhotos(context.Context, string, Vibe) PhotoResult {
	return NoCredentialPhotos(nil)
}

var (
	_ WeatherSource = MockWeatherSource{}
	_ PhotoSource   = MockPhotoSource{}
)
