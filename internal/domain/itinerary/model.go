package itinerary

import (
	"time"

	"github.com/google/uuid"
)

// Request captures the payload accepted by the itinerary service.
type Request struct {
	Location string `json:"location"`
	Vibe     Vibe   `json:"vibe"`
}

// Response is serialized back to API consumers.
type Response struct {
	Summary   string    `json:"summary"`
	Itinerary Itinerary `json:"itinerary"`
}

// Itinerary is the assembled two-day plan for one request.
type Itinerary struct {
	Location string         `json:"location"`
	Vibe     Vibe           `json:"vibe"`
	Weather  Weather        `json:"weather"`
	Photos   []Photo        `json:"photos"`
	Schedule []ScheduleItem `json:"schedule"`
}

// Weather is the normalized weather block of an itinerary.
type Weather struct {
	Temperature int    `json:"temp"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

// Photo is a header image together with its photographer credit.
type Photo struct {
	URL    string `json:"url"`
	Credit string `json:"credit"`
}

// ScheduleItem is one slot of the generated schedule.
type ScheduleItem struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// WeatherReport is the raw reading handed over by a WeatherSource.
type WeatherReport struct {
	TemperatureC float64
	Condition    string
	Description  string
}

// TrendingDestination is a frequently requested location and vibe pair.
type TrendingDestination struct {
	Destination string `json:"destination"`
	Count       int64  `json:"count"`
}

// HistoryRecord is the log entry persisted for every planned itinerary.
type HistoryRecord struct {
	ID             uuid.UUID     `json:"id"`
	Location       string        `json:"location"`
	Vibe           Vibe          `json:"vibe"`
	Condition      string        `json:"condition"`
	TemperatureC   int           `json:"temp"`
	PhotoCount     int           `json:"photoCount"`
	WeatherOutcome SourceOutcome `json:"weatherOutcome"`
	PhotoOutcome   SourceOutcome `json:"photoOutcome"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// Config wires runtime settings for the itinerary domain.
type Config struct {
	TrendingLimit int
	HistoryLimit  int
}
