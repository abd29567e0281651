package itinerary

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yanqian/cinematic-itinerary/pkg/metrics"
	"github.com/yanqian/cinematic-itinerary/pkg/util"
)

const (
	sourceWeather = "weather"
	sourcePhotos  = "photos"

	defaultTrendingLimit = 10
	defaultHistoryLimit  = 20
)

// Service exposes cinematic itinerary planning.
type Service interface {
	Plan(ctx context.Context, req Request) (Response, error)
	Trending(ctx context.Context) ([]TrendingDestination, error)
	History(ctx context.Context) ([]HistoryRecord, error)
	SourceStats() []metrics.SourceCount
}

type service struct {
	cfg      Config
	weather  WeatherSource
	photos   PhotoSource
	trending TrendingStore
	history  HistoryRepository
	outcomes *metrics.OutcomeCounter
	logger   *slog.Logger
	now      util.Clock
	newID    func() uuid.UUID
}

// NewService wires up the itinerary domain.
func NewService(cfg Config, weather WeatherSource, photos PhotoSource, trending TrendingStore, history HistoryRepository, outcomes *metrics.OutcomeCounter, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		weather:  weather,
		photos:   photos,
		trending: trending,
		history:  history,
		outcomes: outcomes,
		logger:   logger.With("component", "itinerary.service"),
		now:      util.NowUTC,
		newID:    uuid.New,
	}
}

// Plan validates the request, gathers weather and photos concurrently and composes
// the itinerary. Once validation passes it never returns an error.
func (s *service) Plan(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	weather, photos := s.gather(ctx, req)
	s.logger.Info("itinerary sources resolved",
		"location", req.Location,
		"vibe", req.Vibe,
		"weather_outcome", weather.Outcome,
		"photo_outcome", photos.Outcome,
		"photos", len(photos.Photos),
	)

	itin := assemble(req, weather.Report, photos.Photos)
	s.record(ctx, req, itin, weather.Outcome, photos.Outcome)

	return Response{Summary: Summarize(req), Itinerary: itin}, nil
}

// gather queries both sources in parallel and waits for both.
func (s *service) gather(ctx context.Context, req Request) (WeatherResult, PhotoResult) {
	var (
		weather WeatherResult
		photos  PhotoResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		weather = s.weather.FetchWeather(gctx, req.Location)
		s.observeOutcome(sourceWeather, weather.Outcome, weather.Err)
		return nil
	})
	g.Go(func() error {
		photos = s.photos.FetchPhotos(gctx, req.Location, req.Vibe)
		s.observeOutcome(sourcePhotos, photos.Outcome, photos.Err)
		return nil
	})
	_ = g.Wait()
	return weather, photos
}

func (s *service) observeOutcome(source string, outcome SourceOutcome, err error) {
	s.outcomes.Inc(source, string(outcome))
	if outcome == OutcomeUpstreamFailure {
		s.logger.Warn("upstream unavailable, using mock data", "source", source, "error", err)
	} else if outcome == OutcomeNoCredential {
		s.logger.Debug("credential missing, using mock data", "source", source)
	}
}

func assemble(req Request, report WeatherReport, photos []Photo) Itinerary {
	out := make([]Photo, 0, len(photos))
	for _, p := range photos {
		out = append(out, Photo{URL: p.URL, Credit: p.Credit})
	}
	return Itinerary{
		Location: req.Location,
		Vibe:     req.Vibe,
		Weather: Weather{
			Temperature: roundHalfUp(report.TemperatureC),
			Condition:   report.Condition,
			Description: report.Description,
		},
		Photos:   out,
		Schedule: ComposeSchedule(req.Vibe, report.Condition),
	}
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// record feeds the trending counter and the history log. Failures are logged only;
// they never affect the itinerary handed back to the caller.
func (s *service) record(ctx context.Context, req Request, itin Itinerary, weather, photos SourceOutcome) {
	key := trendingKey(req)
	if key != "" {
		if err := s.trending.IncrementDestination(ctx, key, trendingDisplay(req)); err != nil {
			s.logger.Warn("failed to record trending destination", "error", err)
		}
	}

	rec := HistoryRecord{
		ID:             s.newID(),
		Location:       itin.Location,
		Vibe:           itin.Vibe,
		Condition:      itin.Weather.Condition,
		TemperatureC:   itin.Weather.Temperature,
		PhotoCount:     len(itin.Photos),
		WeatherOutcome: weather,
		PhotoOutcome:   photos,
		CreatedAt:      s.now(),
	}
	if err := s.history.Insert(ctx, rec); err != nil {
		s.logger.Warn("failed to record itinerary history", "error", err)
	}
}

func (s *service) Trending(ctx context.Context) ([]TrendingDestination, error) {
	items, err := s.trending.TopDestinations(ctx, limitOr(s.cfg.TrendingLimit, defaultTrendingLimit))
	if err != nil {
		return nil, storeError("failed to load trending destinations", err)
	}
	if items == nil {
		items = []TrendingDestination{}
	}
	return items, nil
}

func (s *service) History(ctx context.Context) ([]HistoryRecord, error) {
	items, err := s.history.Recent(ctx, limitOr(s.cfg.HistoryLimit, defaultHistoryLimit))
	if err != nil {
		return nil, storeError("failed to load itinerary history", err)
	}
	if items == nil {
		items = []HistoryRecord{}
	}
	return items, nil
}

func (s *service) SourceStats() []metrics.SourceCount {
	return s.outcomes.Snapshot()
}

func limitOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
