package list_appointments

import (
	"net/http"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/api/handlers"
	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/ptr"
)

const (
	msgInvalidDate   = "format de data invalid, se asteapta YYYY-MM-DD"
	msgInvalidStatus = "status invalid"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.AppointmentsFilter{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if startStr := query.Get("startDate"); startStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid startDate %q", startStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.StartDate = ptr.Ptr(startDate)
	}

	if endStr := query.Get("endDate"); endStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid endDate %q", endStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.EndDate = ptr.Ptr(endDate)
	}

	if statusStr := query.Get("status"); statusStr != "" {
		status := domain.AppointmentStatus(statusStr)
		if !status.IsValid() {
			h.logger.Warn("GET /appointments - Invalid status %q", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Returned %d appointments", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
