package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/analytics"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	// GetSummary returns the combined dashboard summary
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// GetSummary handles GET /analytics/summary
func (h *analyticsHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
