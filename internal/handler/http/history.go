package http

import (
	"net/http"
	"strconv"

	"github.com/attendly/attendance-backend-go/internal/domain/history"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HistoryHandler interface {
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetMonthHistory(w http.ResponseWriter, r *http.Request)
	GetEmployeeHistory(w http.ResponseWriter, r *http.Request)
	GetRangeHistory(w http.ResponseWriter, r *http.Request)
}

type historyHandlerImpl struct {
	historyService history.HistoryService
}

func NewHistoryHandler(historyService history.HistoryService) HistoryHandler {
	return &historyHandlerImpl{historyService: historyService}
}

// GetHistory handles GET /history
func (h *historyHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.historyService.GetHistory(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthHistory handles GET /history/{year}/{month}
func (h *historyHandlerImpl) GetMonthHistory(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Month must be a number", nil)
		return
	}

	result, err := h.historyService.GetMonthHistory(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeHistory handles GET /history/employee/{employeeID}
func (h *historyHandlerImpl) GetEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.historyService.GetEmployeeHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRangeHistory handles GET /history/range?startDate=&endDate=
func (h *historyHandlerImpl) GetRangeHistory(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if startDate == "" || endDate == "" {
		response.BadRequest(w, "startDate and endDate are required", nil)
		return
	}

	result, err := h.historyService.GetRangeHistory(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
