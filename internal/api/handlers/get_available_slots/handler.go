package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/api/handlers"
	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/ptr"
	getSlots "github.com/itpmanager/ITP-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "parametrul date este obligatoriu"
	msgInvalidDate      = "format de data invalid, se asteapta YYYY-MM-DD"
	msgInvalidService   = "tip de serviciu invalid"
	msgInvalidDuration  = "durata invalida"
	msgScheduleNotFound = "programul de lucru nu este configurat"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&serviceType=ITP_AUTOTURISM&duration=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getSlots.Request{Date: date}

	if serviceStr := query.Get("serviceType"); serviceStr != "" {
		serviceType := domain.ServiceType(serviceStr)
		if !serviceType.IsValid() {
			h.logger.Warn("GET /slots - Invalid service type %q", serviceStr)
			handlers.RespondBadRequest(w, msgInvalidService)
			return
		}
		req.ServiceType = &serviceType
	}

	if durationStr := query.Get("duration"); durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid duration %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.DurationMinutes = ptr.Ptr(duration)
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getSlots.ErrScheduleNotConfigured):
			h.logger.Warn("GET /slots - Schedule not configured for date=%s", dateStr)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Returned %d slots for date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
