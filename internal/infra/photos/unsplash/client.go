package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
)

const (
	defaultBaseURL = "https://api.unsplash.com/search/photos"
	defaultTimeout = 10 * time.Second
	defaultPerPage = 3
)

var errMissingAccessKey = errors.New("unsplash access key not configured")

// Client searches Unsplash for landscape photos.
type Client struct {
	accessKey  string
	baseURL    string
	perPage    int
	httpClient *http.Client
}

// NewClient builds an API client. A blank accessKey yields the no-credential photos
// without touching the network.
func NewClient(accessKey, baseURL string, perPage int, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		accessKey: strings.TrimSpace(accessKey),
		baseURL:   strings.TrimRight(endpoint, "/"),
		perPage:   perPage,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPhotos implements itinerary.PhotoSource.
func (c *Client) FetchPhotos(ctx context.Context, location string, vibe itinerary.Vibe) itinerary.PhotoResult {
	if c.accessKey == "" {
		return itinerary.NoCredentialPhotos(errMissingAccessKey)
	}
	photos, err := c.search(ctx, location+" "+vibe.String())
	if err != nil {
		return itinerary.UpstreamFailurePhotos(err)
	}
	return itinerary.PhotoResult{Photos: photos, Outcome: itinerary.OutcomeLive}
}

func (c *Client) search(ctx context.Context, term string) ([]itinerary.Photo, error) {
	query := url.Values{}
	query.Set("query", term)
	query.Set("per_page", strconv.Itoa(c.perPage))
	query.Set("orientation", "landscape")
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build photo request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("photo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("photo request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode photo response: %w", err)
	}
	return toPhotos(raw.Results, c.perPage), nil
}

type searchResponse struct {
	Total   int      `json:"total"`
	Results []result `json:"results"`
}

type result struct {
	ID             string    `json:"id"`
	AltDescription string    `json:"alt_description"`
	URLs           photoURLs `json:"urls"`
	User           user      `json:"user"`
}

type photoURLs struct {
	Regular string `json:"regular"`
	Small   string `json:"small"`
}

type user struct {
	Name string `json:"name"`
}

// toPhotos keeps provider ranking and caps the list at limit. Short result sets are
// not padded.
func toPhotos(results []result, limit int) []itinerary.Photo {
	if len(results) > limit {
		results = results[:limit]
	}
	photos := make([]itinerary.Photo, 0, len(results))
	for _, r := range results {
		photos = append(photos, itinerary.Photo{URL: r.URLs.Regular, Credit: r.User.Name})
	}
	return photos
}

var _ itinerary.PhotoSource = (*Client)(nil)
