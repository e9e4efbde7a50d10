package create_appointment

import (
	"errors"
	"net/http"

	"github.com/itpmanager/ITP-SchedulingService/internal/api/handlers"
	createAppointment "github.com/itpmanager/ITP-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corp de cerere invalid"
	msgInvalidDate        = "format de data invalid, se asteapta YYYY-MM-DD"
	msgInvalidTime        = "format de ora invalid, se asteapta HH:MM"
	msgSlotNotAvailable   = "intervalul orar selectat nu este disponibil"
	msgStationClosed      = "statia este inchisa la data selectata"
	msgHolidayDate        = "data selectata este sarbatoare legala"
	msgInvalidTimeSlot    = "interval orar invalid"
	msgTooLateToBook      = "este prea tarziu pentru a programa acest interval"
	msgInvalidApptDate    = "data programarii este invalida"
	msgScheduleNotFound   = "programul de lucru nu este configurat"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, time=%s", req.AppointmentDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrStationClosed):
			h.logger.Warn("POST /appointments - Station closed: date=%s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgStationClosed)

		case errors.Is(err, createAppointment.ErrHolidayDate):
			h.logger.Warn("POST /appointments - Holiday date: date=%s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgHolidayDate)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: date=%s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgInvalidApptDate)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: date=%s, time=%s", req.AppointmentDate, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: date=%s, time=%s", req.AppointmentDate, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrScheduleNotConfigured):
			h.logger.Warn("POST /appointments - Schedule not configured: date=%s", req.AppointmentDate)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.AppointmentDate, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, code=%s, date=%s, time=%s",
		result.ID, result.ConfirmationCode, req.AppointmentDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
