package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cinematic-itinerary/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/vibes", handler.ListVibes)
		api.POST("/itineraries", handler.PlanItinerary)
		api.GET("/itineraries/trending", handler.TrendingDestinations)
		api.GET("/itineraries/history", handler.History)
		api.GET("/stats/sources", handler.SourceStats)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
