package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/itpmanager/ITP-SchedulingService/internal/api/handlers"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/calendar"
)

const (
	msgInvalidYear  = "parametrul year este invalid"
	msgInvalidMonth = "parametrul month este invalid"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?year=2026&month=8
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %q", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	response, err := h.service.GetMonth(r.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /calendar - Failed: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Success: year=%d, month=%d, days=%d", year, month, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
