package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	defaultTimeout = 10 * time.Second
)

var errMissingAPIKey = errors.New("openweather api key not configured")

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. A blank apiKey yields the no-credential snapshot
// without touching the network.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchWeather implements itinerary.WeatherSource.
func (c *Client) FetchWeather(ctx context.Context, location string) itinerary.WeatherResult {
	if c.apiKey == "" {
		return itinerary.NoCredentialWeather(errMissingAPIKey)
	}
	report, err := c.fetch(ctx, location)
	if err != nil {
		return itinerary.UpstreamFailureWeather(err)
	}
	return itinerary.WeatherResult{Report: report, Outcome: itinerary.OutcomeLive}
}

func (c *Client) fetch(ctx context.Context, location string) (itinerary.WeatherReport, error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return itinerary.WeatherReport{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return itinerary.WeatherReport{}, fmt.Errorf("weather request failed: %w", redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return itinerary.WeatherReport{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return itinerary.WeatherReport{}, fmt.Errorf("decode weather response: %w", err)
	}
	return normalize(raw), nil
}

type apiResponse struct {
	Main    apiMain        `json:"main"`
	Weather []weatherEntry `json:"weather"`
}

type apiMain struct {
	Temp float64 `json:"temp"`
}

type weatherEntry struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// normalize picks the first weather entry. A payload without entries is treated as
// clear sky.
func normalize(raw apiResponse) itinerary.WeatherReport {
	report := itinerary.WeatherReport{
		TemperatureC: raw.Main.Temp,
		Condition:    "Clear",
		Description:  "Clear sky",
	}
	if len(raw.Weather) == 0 {
		return report
	}
	if v := strings.TrimSpace(raw.Weather[0].Main); v != "" {
		report.Condition = v
	}
	if v := strings.TrimSpace(raw.Weather[0].Description); v != "" {
		report.Description = v
	}
	return report
}

// redact strips the api key from transport errors, which embed the request URL.
func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, secret) {
		return err
	}
	return errors.New(strings.ReplaceAll(msg, secret, "REDACTED"))
}

var _ itinerary.WeatherSource = (*Client)(nil)
