package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	appointmentRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/appointment"
	"github.com/itpmanager/ITP-SchedulingService/internal/integrations/notifyservice"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/appointments/models"
)

// Service drives the appointment lifecycle. Every status change goes
// through a named operation that guards the allowed transition before
// touching storage; there is no free-form status update.
type Service struct {
	appointmentRepo AppointmentRepository
	notifyClient    NotifyServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the appointments service
func NewService(
	appointmentRepo AppointmentRepository,
	notifyClient NotifyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifyClient:    notifyClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID fetches one appointment
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// GetByConfirmationCode fetches one appointment by its confirmation code.
// The code is the only credential the public lookup needs.
func (s *Service) GetByConfirmationCode(ctx context.Context, code string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByConfirmationCode: looking up code=%s", code)

	appt, err := s.appointmentRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByConfirmationCode: code=%s not found", code)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByConfirmationCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByConfirmationCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetByPhone fetches the appointment history of a phone number
func (s *Service) GetByPhone(ctx context.Context, phone string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByPhone: fetching appointments for phone=%s", phone)

	appointments, err := s.appointmentRepo.GetByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("GetByPhone: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetByPhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPhone: fetched %d appointments for phone=%s", len(appointments), phone)
	return models.FromDomainAppointmentList(appointments), nil
}

// List fetches appointments by period/status filter
func (s *Service) List(ctx context.Context, filter domain.AppointmentsFilter) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments with filter")

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Confirm moves PENDING -> CONFIRMED and stamps the confirmation time
func (s *Service) Confirm(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Confirm: confirming appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "Confirm")
	if err != nil {
		return nil, err
	}

	if !appt.CanBeConfirmed() {
		s.logger.Warn("Confirm: appointment id=%d cannot be confirmed, status=%s", id, appt.Status)
		return nil, &InvalidTransitionError{From: appt.Status, To: domain.StatusConfirmed}
	}

	if err := s.appointmentRepo.Confirm(ctx, id, s.timeProvider.Now()); err != nil {
		return nil, s.wrapRepoError("Confirm", id, err)
	}

	s.logger.Info("Confirm: confirmed appointment id=%d", id)
	s.sendEvent(notifyservice.EventAppointmentConfirmed, appt, domain.StatusConfirmed)

	return s.refetch(ctx, id)
}

// Cancel moves PENDING/CONFIRMED -> CANCELLED with an optional reason
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "Cancel")
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return nil, &InvalidTransitionError{From: appt.Status, To: domain.StatusCancelled}
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancelReasonLength {
		return nil, fmt.Errorf("%w: cancel reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.Reason, s.timeProvider.Now()); err != nil {
		return nil, s.wrapRepoError("Cancel", id, err)
	}

	s.logger.Info("Cancel: cancelled appointment id=%d", id)
	s.sendEvent(notifyservice.EventAppointmentCancelled, appt, domain.StatusCancelled)

	return s.refetch(ctx, id)
}

// StartInspection moves CONFIRMED -> IN_PROGRESS when the vehicle arrives
func (s *Service) StartInspection(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("StartInspection: starting inspection for appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "StartInspection")
	if err != nil {
		return nil, err
	}

	if !appt.CanStartInspection() {
		s.logger.Warn("StartInspection: appointment id=%d cannot start, status=%s", id, appt.Status)
		return nil, &InvalidTransitionError{From: appt.Status, To: domain.StatusInProgress}
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusInProgress); err != nil {
		return nil, s.wrapRepoError("StartInspection", id, err)
	}

	s.logger.Info("StartInspection: inspection started for appointment id=%d", id)
	return s.refetch(ctx, id)
}

// MarkRarBlocked puts the appointment on a RAR regulatory hold. The
// inspection cannot continue until the registry issue is resolved, after
// which the appointment completes directly from RAR_BLOCKED.
func (s *Service) MarkRarBlocked(ctx context.Context, id int64, req *models.RarBlockRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("MarkRarBlocked: blocking appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "MarkRarBlocked")
	if err != nil {
		return nil, err
	}

	if !appt.CanBeRarBlocked() {
		s.logger.Warn("MarkRarBlocked: appointment id=%d cannot be blocked, status=%s", id, appt.Status)
		return nil, &InvalidTransitionError{From: appt.Status, To: domain.StatusRarBlocked}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := s.appointmentRepo.MarkRarBlocked(ctx, id, req.Notes, s.timeProvider.Now()); err != nil {
		return nil, s.wrapRepoError("MarkRarBlocked", id, err)
	}

	s.logger.Info("MarkRarBlocked: appointment id=%d is now RAR blocked", id)
	return s.refetch(ctx, id)
}

// SetItpResult records the inspection outcome without closing the
// appointment. Allowed while the inspection runs or is RAR blocked.
func (s *Service) SetItpResult(ctx context.Context, id int64, req *models.ItpResultRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("SetItpResult: recording result=%s for appointment id=%d", req.Result, id)

	appt, err := s.getAppointment(ctx, id, "SetItpResult")
	if err != nil {
		return nil, err
	}

	if !appt.CanSetItpResult() {
		s.logger.Warn("SetItpResult: appointment id=%d cannot take a result, status=%s", id, appt.Status)
		return nil, fmt.Errorf("%w: result can only be recorded during an inspection", ErrInvalidTransition)
	}

	result, err := models.ToDomainItpResult(req.Result)
	if err != nil {
		s.logger.Warn("SetItpResult: invalid result=%s for appointment id=%d", req.Result, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := s.appointmentRepo.SetItpResult(ctx, id, result, req.Notes); err != nil {
		return nil, s.wrapRepoError("SetItpResult", id, err)
	}

	s.logger.Info("SetItpResult: recorded result=%s for appointment id=%d", result, id)
	return s.refetch(ctx, id)
}

// Complete closes the appointment after the inspection. The outcome is
// optional: recording it stays a separate SetItpResult step.
func (s *Service) Complete(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "Complete")
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", id, appt.Status)
		return nil, &InvalidTransitionError{From: appt.Status, To: domain.StatusCompleted}
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		return nil, s.wrapRepoError("Complete", id, err)
	}

	s.logger.Info("Complete: completed appointment id=%d", id)

	if appt.ItpResult != nil && (*appt.ItpResult == domain.ItpAdmis || *appt.ItpResult == domain.ItpAdmisObs) {
		s.sendEvent(notifyservice.EventInspectionCompleted, appt, domain.StatusCompleted)
	}

	return s.refetch(ctx, id)
}

// QuickAdmis is the walk-in shortcut: the appointment is closed with an
// ADMIS outcome in a single step, from any pre-completion state.
func (s *Service) QuickAdmis(ctx context.Context, id int64, req *models.QuickAdmisRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("QuickAdmis: quick-completing appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "QuickAdmis")
	if err != nil {
		return nil, err
	}

	if !appt.CanQuickAdmis() {
		s.logger.Warn("QuickAdmis: appointment id=%d cannot be quick-completed, status=%s", id, appt.Status)
		return nil, &InvalidTransitionError{From: appt.Status, To: domain.StatusCompleted}
	}

	var notes *string
	if req != nil {
		if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		notes = req.Notes
	}

	if err := s.appointmentRepo.CompleteWithResult(ctx, id, domain.ItpAdmis, notes); err != nil {
		return nil, s.wrapRepoError("QuickAdmis", id, err)
	}

	s.logger.Info("QuickAdmis: completed appointment id=%d with result=%s", id, domain.ItpAdmis)

	s.sendEvent(notifyservice.EventInspectionCompleted, appt, domain.StatusCompleted)

	return s.refetch(ctx, id)
}

// NoShow marks a confirmed appointment whose client never arrived
func (s *Service) NoShow(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("NoShow: marking appointment id=%d as no-show", id)

	appt, err := s.getAppointment(ctx, id, "NoShow")
	if err != nil {
		return nil, err
	}

	if !appt.CanBeMarkedNoShow() {
		s.logger.Warn("NoShow: appointment id=%d cannot be marked, status=%s", id, appt.Status)
		return nil, &InvalidTransitionError{From: appt.Status, To: domain.StatusNoShow}
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusNoShow); err != nil {
		return nil, s.wrapRepoError("NoShow", id, err)
	}

	s.logger.Info("NoShow: appointment id=%d marked as no-show", id)
	return s.refetch(ctx, id)
}

// Update applies a partial correction of appointment fields. Terminal
// appointments are immutable; status never changes here.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	if !appt.CanBeUpdated() {
		s.logger.Warn("Update: appointment id=%d is terminal, status=%s", id, appt.Status)
		return nil, ErrNotUpdatable
	}

	upd, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid update for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if upd.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// Keep end_time consistent when the time footprint changes
	if upd.StartTime != nil || upd.DurationMinutes != nil {
		startTime := appt.StartTime
		if upd.StartTime != nil {
			startTime = *upd.StartTime
		}
		durationMinutes := appt.DurationMinutes
		if upd.DurationMinutes != nil {
			durationMinutes = *upd.DurationMinutes
		}
		endTime, err := startTime.AddMinutes(durationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: inspection would run past midnight", ErrInvalidInput)
		}
		upd.EndTime = &endTime
	}

	if err := s.appointmentRepo.UpdateFields(ctx, id, upd); err != nil {
		return nil, s.wrapRepoError("Update", id, err)
	}

	s.logger.Info("Update: updated appointment id=%d", id)
	return s.refetch(ctx, id)
}

// Delete removes an appointment outright. Administrative use only.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted appointment id=%d", id)
	return nil
}

// helpers

func (s *Service) getAppointment(ctx context.Context, id int64, op string) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

func (s *Service) refetch(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.getAppointment(ctx, id, "refetch")
	if err != nil {
		return nil, err
	}
	return models.FromDomainAppointment(appt), nil
}

func (s *Service) wrapRepoError(op string, id int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%d not found during update", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) sendEvent(eventType string, appt *domain.Appointment, status domain.AppointmentStatus) {
	event := notifyservice.AppointmentEvent{
		Type:             eventType,
		AppointmentID:    appt.ID,
		ConfirmationCode: appt.ConfirmationCode,
		ClientName:       appt.ClientName,
		ClientPhone:      appt.ClientPhone,
		ClientEmail:      appt.ClientEmail,
		VehiclePlate:     appt.VehiclePlate,
		AppointmentDate:  appt.AppointmentDate.Format(domain.DateFormat),
		StartTime:        appt.StartTime.String(),
		Status:           string(status),
	}
	if appt.ItpResult != nil {
		result := string(*appt.ItpResult)
		event.ItpResult = &result
	}
	s.notifyClient.SendEventAsync(event)
}
