package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
	apperrors "github.com/yanqian/cinematic-itinerary/pkg/errors"
)

// Handler wires the HTTP transport to the itinerary service.
type Handler struct {
	itinerarySvc itinerary.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc itinerary.Service, logger *slog.Logger) *Handler {
	return &Handler{
		itinerarySvc: svc,
		logger:       logger.With("component", "http.handler"),
	}
}

// PlanItinerary builds a cinematic itinerary for a location and vibe.
func (h *Handler) PlanItinerary(c *gin.Context) {
	var req itinerary.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.itinerarySvc.Plan(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "itinerary_failed"
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListVibes returns the supported vibes in canonical order.
func (h *Handler) ListVibes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vibes": itinerary.Vibes()})
}

// TrendingDestinations returns the most requested destinations.
func (h *Handler) TrendingDestinations(c *gin.Context) {
	items, err := h.itinerarySvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusServiceUnavailable, "trending_unavailable", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": items})
}

// History returns the most recently planned itineraries.
func (h *Handler) History(c *gin.Context) {
	records, err := h.itinerarySvc.History(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusServiceUnavailable, "history_unavailable", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"itineraries": records})
}

// SourceStats reports how often each upstream source fell back to mock data.
func (h *Handler) SourceStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": h.itinerarySvc.SourceStats()})
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
