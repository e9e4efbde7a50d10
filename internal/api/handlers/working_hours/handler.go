package working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/itpmanager/ITP-SchedulingService/internal/api/handlers"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/schedule"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidDayOfWeek   = "ziua saptamanii trebuie sa fie intre 0 si 6"
	msgInvalidRequestBody = "corp de cerere invalid"
	msgDayNotConfigured   = "programul pentru aceasta zi nu este configurat"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGetWeek GET /api/v1/schedule/working-hours
func (h *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetWeeklySchedule(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/working-hours - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/working-hours - Success: %d days", len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleGetDay GET /api/v1/schedule/working-hours/{dayOfWeek}
func (h *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	dayOfWeek, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil {
		h.logger.Warn("GET /schedule/working-hours/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	response, err := h.service.GetWorkingHours(r.Context(), dayOfWeek)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrWorkingHoursNotFound):
			h.logger.Warn("GET /schedule/working-hours/{day} - Not configured: day=%d", dayOfWeek)
			handlers.RespondNotFound(w, msgDayNotConfigured)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule/working-hours/{day} - Invalid input: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("GET /schedule/working-hours/{day} - Failed: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleUpdate PUT /api/v1/schedule/working-hours/{dayOfWeek}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	dayOfWeek, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil {
		h.logger.Warn("PUT /schedule/working-hours/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req models.UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/working-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	response, err := h.service.UpdateWorkingHours(r.Context(), dayOfWeek, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/working-hours/{day} - Invalid input: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /schedule/working-hours/{day} - Failed: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/working-hours/{day} - Updated: day=%d", dayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, response)
}
