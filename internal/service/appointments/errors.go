package appointments

import (
	"errors"
	"fmt"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
)

var (
	// ErrAppointmentNotFound returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition returned for a status change the lifecycle
	// does not allow
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotUpdatable returned when correcting a terminal appointment
	ErrNotUpdatable = errors.New("appointment can no longer be updated")

	// ErrInvalidInput returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)

// InvalidTransitionError carries the rejected edge so handlers can report
// exactly which transition was attempted. Unwraps to ErrInvalidTransition.
type InvalidTransitionError struct {
	From domain.AppointmentStatus
	To   domain.AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
