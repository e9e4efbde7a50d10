package lookup_appointment

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/itpmanager/ITP-SchedulingService/internal/api/handlers"
	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidCode  = "cod de confirmare invalid"
	msgInvalidPhone = "numar de telefon invalid"
	msgNotFound     = "programarea nu a fost gasita"
)

// Handler serves the public self-service lookups. The confirmation code
// is the capability: whoever holds it can read the appointment without
// staff authentication.
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

// HandleByCode GET /api/v1/appointments/confirmation/{code}
func (h *Handler) HandleByCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	code := strings.ToUpper(strings.TrimSpace(vars["code"]))
	if len(code) != domain.ConfirmationCodeLength {
		h.logger.Warn("GET /appointments/confirmation/{code} - Invalid code length: %d", len(code))
		handlers.RespondBadRequest(w, msgInvalidCode)
		return
	}

	appointment, err := h.service.GetByConfirmationCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/confirmation/{code} - Not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /appointments/confirmation/{code} - Failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/confirmation/{code} - Retrieved: code=%s", code)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}

// HandleByPhone GET /api/v1/appointments/by-phone/{phone}
func (h *Handler) HandleByPhone(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	phone := strings.TrimSpace(vars["phone"])
	if phone == "" {
		h.logger.Warn("GET /appointments/by-phone/{phone} - Empty phone")
		handlers.RespondBadRequest(w, msgInvalidPhone)
		return
	}

	result, err := h.service.GetByPhone(r.Context(), phone)
	if err != nil {
		h.logger.Error("GET /appointments/by-phone/{phone} - Failed: phone=%s, error=%v", phone, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/by-phone/{phone} - Returned %d appointments for phone=%s",
		len(result.Appointments), phone)
	handlers.RespondJSON(w, http.StatusOK, result)
}
