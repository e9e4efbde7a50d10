package holidays

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
	msgInvalidHolidayID   = "ID de sarbatoare invalid"
	msgInvalidRequestBody = "corp de cerere invalid"
	msgInvalidYear        = "anul este invalid"
	msgHolidayNotFound    = "sarbatoarea nu a fost gasita"
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

// HandleList GET /api/v1/schedule/holidays
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListHolidays(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/holidays - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/holidays - Success: %d holidays", len(response.Holidays))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleCreate POST /api/v1/schedule/holidays
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	response, err := h.service.CreateHoliday(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/holidays - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /schedule/holidays - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/holidays - Created: holiday_id=%d, name=%q", response.ID, response.Name)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// HandleDelete DELETE /api/v1/schedule/holidays/{holidayId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	holidayID, err := strconv.ParseInt(mux.Vars(r)["holidayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/holidays/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	if err := h.service.DeleteHoliday(r.Context(), holidayID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrHolidayNotFound):
			h.logger.Warn("DELETE /schedule/holidays/{id} - Not found: holiday_id=%d", holidayID)
			handlers.RespondNotFound(w, msgHolidayNotFound)

		default:
			h.logger.Error("DELETE /schedule/holidays/{id} - Failed: holiday_id=%d, error=%v", holidayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/holidays/{id} - Deleted: holiday_id=%d", holidayID)
	handlers.RespondNoContent(w)
}

// HandleSeed POST /api/v1/schedule/holidays/seed/{year}
func (h *Handler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		h.logger.Warn("POST /schedule/holidays/seed/{year} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	response, err := h.service.SeedRomanianHolidays(r.Context(), year)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/holidays/seed/{year} - Invalid input: year=%d, error=%v", year, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /schedule/holidays/seed/{year} - Failed: year=%d, error=%v", year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/holidays/seed/{year} - Seeded: year=%d, inserted=%d", year, response.Inserted)
	handlers.RespondJSON(w, http.StatusOK, response)
}
