package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
	"github.com/yanqian/cinematic-itinerary/internal/infra/config"
	"github.com/yanqian/cinematic-itinerary/internal/infra/triprepo"
	"github.com/yanqian/cinematic-itinerary/internal/infra/tripstore"
	apperrors "github.com/yanqian/cinematic-itinerary/pkg/errors"
	"github.com/yanqian/cinematic-itinerary/pkg/metrics"
)

func TestRouter_PlanItineraryEndToEndWithMocks(t *testing.T) {
	svc := itinerary.NewService(
		itinerary.Config{},
		itinerary.MockWeatherSource{},
		itinerary.MockPhotoSource{},
		tripstore.NewMemoryStore(),
		triprepo.NewMemoryRepository(10),
		metrics.NewOutcomeCounter(),
		newTestLogger(),
	)
	server := newRouterUnderTest(t, svc)

	recorder := performRequest(http.MethodPost, "/api/v1/itineraries", `{"location":"Tokyo","vibe":"Cyberpunk"}`, server)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got itinerary.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Here is a Cyberpunk itinerary for Tokyo.", got.Summary)
	require.Equal(t, itinerary.Weather{Temperature: 20, Condition: "Clear", Description: "clear sky"}, got.Itinerary.Weather)
	require.Len(t, got.Itinerary.Photos, 3)
	require.Equal(t, "Mock User", got.Itinerary.Photos[0].Credit)
	require.Len(t, got.Itinerary.Schedule, 8)
	require.Equal(t, "City Walk", got.Itinerary.Schedule[1].Activity)

	trending := performRequest(http.MethodGet, "/api/v1/itineraries/trending", "", server)
	require.Equal(t, http.StatusOK, trending.Code)
	require.JSONEq(t, `{"destinations":[{"destination":"Tokyo · Cyberpunk","count":1}]}`, trending.Body.String())

	history := performRequest(http.MethodGet, "/api/v1/itineraries/history", "", server)
	require.Equal(t, http.StatusOK, history.Code)
	var historyBody struct {
		Itineraries []itinerary.HistoryRecord `json:"itineraries"`
	}
	require.NoError(t, json.Unmarshal(history.Body.Bytes(), &historyBody))
	require.Len(t, historyBody.Itineraries, 1)
	require.Equal(t, itinerary.OutcomeNoCredential, historyBody.Itineraries[0].WeatherOutcome)

	stats := performRequest(http.MethodGet, "/api/v1/stats/sources", "", server)
	require.Equal(t, http.StatusOK, stats.Code)
	require.JSONEq(t, `{"sources":[
		{"source":"photos","outcome":"no_credential","count":1},
		{"source":"weather","outcome":"no_credential","count":1}
	]}`, stats.Body.String())
}

func TestRouter_PlanItineraryInvalidJSON(t *testing.T) {
	svc := &stubItineraryService{}

	recorder := performRequest(http.MethodPost, "/api/v1/itineraries", `{"location":42}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
	require.False(t, svc.called)
}

func TestRouter_PlanItineraryInvalidVibe(t *testing.T) {
	svc := &stubItineraryService{
		planFn: func(ctx context.Context, req itinerary.Request) (itinerary.Response, error) {
			return itinerary.Response{}, req.Validate()
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/itineraries", `{"location":"Tokyo","vibe":"Vaporwave"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "Vaporwave")
}

func TestRouter_PlanItineraryUnexpectedError(t *testing.T) {
	svc := &stubItineraryService{
		planFn: func(ctx context.Context, req itinerary.Request) (itinerary.Response, error) {
			return itinerary.Response{}, errors.New("boom")
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/itineraries", `{"location":"Tokyo","vibe":"Noir"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, "itinerary_failed", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_TrendingStoreFailure(t *testing.T) {
	svc := &stubItineraryService{trendingErr: apperrors.Wrap(apperrors.CodeStoreError, "failed to load trending destinations", errors.New("dial tcp"))}

	recorder := performRequest(http.MethodGet, "/api/v1/itineraries/trending", "", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	require.Equal(t, "trending_unavailable", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_ListVibes(t *testing.T) {
	recorder := performRequest(http.MethodGet, "/api/v1/vibes", "", newRouterUnderTest(t, &stubItineraryService{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"vibes":["Wes Anderson","Cyberpunk","Noir","Studio Ghibli","Minimalist"]}`, recorder.Body.String())
}

func TestRouter_RequestIDAndCORS(t *testing.T) {
	server := newRouterUnderTest(t, &stubItineraryService{})

	recorder := performRequest(http.MethodGet, "/healthz", "", server)
	require.Equal(t, http.StatusOK, recorder.Code)
	_, err := uuid.Parse(recorder.Header().Get(requestIDHeader))
	require.NoError(t, err)
	require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/itineraries", nil)
	known := uuid.NewString()
	req.Header.Set(requestIDHeader, known)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, known, rec.Header().Get(requestIDHeader))
}

func TestResolveOrigin(t *testing.T) {
	allowed := []string{"https://chat.example.com", "https://other.example.com"}
	require.Equal(t, "*", resolveOrigin("https://x", nil))
	require.Equal(t, "https://OTHER.example.com", resolveOrigin("https://OTHER.example.com", allowed))
	require.Equal(t, "https://chat.example.com", resolveOrigin("https://evil.example.com", allowed))
	require.Equal(t, "*", resolveOrigin("https://x", []string{"*"}))
}

func performRequest(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc itinerary.Service) *http.Server {
	t.Helper()
	handler := NewHandler(svc, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubItineraryService struct {
	planFn      func(ctx context.Context, req itinerary.Request) (itinerary.Response, error)
	trendingErr error
	called      bool
}

func (s *stubItineraryService) Plan(ctx context.Context, req itinerary.Request) (itinerary.Response, error) {
	s.called = true
	if s.planFn != nil {
		return s.planFn(ctx, req)
	}
	return itinerary.Response{}, nil
}

func (s *stubItineraryService) Trending(context.Context) ([]itinerary.TrendingDestination, error) {
	if s.trendingErr != nil {
		return nil, s.trendingErr
	}
	return []itinerary.TrendingDestination{}, nil
}

func (s *stubItineraryService) History(context.Context) ([]itinerary.HistoryRecord, error) {
	return []itinerary.HistoryRecord{}, nil
}

func (s *stubItineraryService) SourceStats() []metrics.SourceCount {
	return nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
