package transition_appointment

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/itpmanager/ITP-SchedulingService/internal/api/handlers"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/appointments"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "ID de programare invalid"
	msgNotFound             = "programarea nu a fost gasita"
	msgInvalidTransition    = "tranzitie de status nepermisa"
	msgResultRequired       = "rezultatul ITP trebuie inregistrat inainte de finalizare"
)

// Handler serves the simple lifecycle transitions, the ones that carry no
// request body: confirm, start, complete, no-show.
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

// HandleConfirm POST /api/v1/appointments/{appointmentId}/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "confirm", h.service.Confirm)
}

// HandleStart POST /api/v1/appointments/{appointmentId}/start
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "start", h.service.StartInspection)
}

// HandleComplete POST /api/v1/appointments/{appointmentId}/complete
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "complete", h.service.Complete)
}

// HandleNoShow POST /api/v1/appointments/{appointmentId}/no-show
func (h *Handler) HandleNoShow(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "no-show", h.service.NoShow)
}

func (h *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fn func(ctx context.Context, id int64) (*models.AppointmentResponse, error),
) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/%s - Invalid appointment ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	appointment, err := fn(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/%s - Not found: appointment_id=%d", op, appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("POST /appointments/{id}/%s - Invalid transition: appointment_id=%d, error=%v",
				op, appointmentID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/%s - Invalid input: appointment_id=%d, error=%v",
				op, appointmentID, err)
			handlers.RespondBadRequest(w, msgResultRequired)

		default:
			h.logger.Error("POST /appointments/{id}/%s - Failed: appointment_id=%d, error=%v",
				op, appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/%s - Transition applied: appointment_id=%d, status=%s",
		op, appointmentID, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
