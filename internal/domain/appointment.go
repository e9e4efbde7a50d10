package domain

import (
	"time"

	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "PENDING"
	StatusConfirmed  AppointmentStatus = "CONFIRMED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusRarBlocked AppointmentStatus = "RAR_BLOCKED"
	StatusCancelled  AppointmentStatus = "CANCELLED"
	StatusCompleted  AppointmentStatus = "COMPLETED"
	StatusNoShow     AppointmentStatus = "NO_SHOW"
)

// allowedTransitions full transition graph, including the quick-admis
// shortcut edges to COMPLETED. Named operations narrow this further
// (e.g. Complete accepts only IN_PROGRESS and RAR_BLOCKED sources).
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed:  {StatusInProgress, StatusRarBlocked, StatusCancelled, StatusNoShow, StatusCompleted},
	StatusInProgress: {StatusRarBlocked, StatusCompleted},
	StatusRarBlocked: {StatusCompleted},
	StatusCancelled:  {},
	StatusCompleted:  {},
	StatusNoShow:     {},
}

// CanTransitionTo reports whether the status graph has an edge from s to target.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions exist from s.
func (s AppointmentStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// IsValid reports whether s is one of the known statuses.
func (s AppointmentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Label returns the Romanian display label for the status.
// Exhaustive over all statuses so new ones cannot be forgotten.
func (s AppointmentStatus) Label() string {
	switch s {
	case StatusPending:
		return "În așteptare"
	case StatusConfirmed:
		return "Confirmată"
	case StatusInProgress:
		return "În lucru"
	case StatusRarBlocked:
		return "Blocată RAR"
	case StatusCancelled:
		return "Anulată"
	case StatusCompleted:
		return "Finalizată"
	case StatusNoShow:
		return "Neprezentare"
	default:
		return string(s)
	}
}

// Color returns the UI color code associated with the status.
func (s AppointmentStatus) Color() string {
	switch s {
	case StatusPending:
		return "#f59e0b"
	case StatusConfirmed:
		return "#3b82f6"
	case StatusInProgress:
		return "#8b5cf6"
	case StatusRarBlocked:
		return "#ef4444"
	case StatusCancelled:
		return "#6b7280"
	case StatusCompleted:
		return "#22c55e"
	case StatusNoShow:
		return "#78716c"
	default:
		return "#000000"
	}
}

// Appointment represents a scheduled inspection visit at the station.
//
// Client and vehicle fields are denormalized snapshots taken at creation
// time: the record stays valid and displayable even if the referenced
// client is later edited or deleted, and walk-in clients need no registry
// entry at all. ClientID is a weak back-reference for convenience joins.
type Appointment struct {
	ID               int64
	ConfirmationCode string

	ClientID    *int64
	ClientName  string
	ClientPhone string
	ClientEmail *string

	VehiclePlate    string
	VehicleMake     *string
	VehicleModel    *string
	VehicleYear     *int
	VehicleCategory VehicleCategory

	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int

	ServiceType  ServiceType
	ServiceNotes *string

	IsRarBlocked bool
	RarBlockedAt *time.Time
	RarNotes     *string
	ItpResult    *ItpResult
	ItpNotes     *string

	Status AppointmentStatus

	ConfirmedAt  *time.Time
	CancelledAt  *time.Time
	CancelReason *string
	ReminderSent bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the appointment still occupies slot capacity.
// Cancelled and no-show appointments free their slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeConfirmed reports whether Confirm is legal.
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending
}

// CanBeCancelled reports whether Cancel is legal.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanStartInspection reports whether StartInspection is legal.
func (a *Appointment) CanStartInspection() bool {
	return a.Status == StatusConfirmed
}

// CanBeRarBlocked reports whether MarkRarBlocked is legal.
func (a *Appointment) CanBeRarBlocked() bool {
	return a.Status == StatusConfirmed || a.Status == StatusInProgress
}

// CanBeCompleted reports whether Complete is legal.
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusInProgress || a.Status == StatusRarBlocked
}

// CanQuickAdmis reports whether the quick-admis shortcut is legal.
func (a *Appointment) CanQuickAdmis() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed || a.Status == StatusInProgress
}

// CanBeMarkedNoShow reports whether NoShow is legal.
func (a *Appointment) CanBeMarkedNoShow() bool {
	return a.Status == StatusConfirmed
}

// CanSetItpResult reports whether the inspection result may be recorded
// without changing the status.
func (a *Appointment) CanSetItpResult() bool {
	return a.Status == StatusInProgress || a.Status == StatusRarBlocked
}

// CanBeUpdated reports whether non-status fields may still be corrected.
func (a *Appointment) CanBeUpdated() bool {
	return !a.Status.IsTerminal()
}

// AppointmentsFilter filter for listing appointments
type AppointmentsFilter struct {
	StartDate       *time.Time         // period start (inclusive), nil = unbounded
	EndDate         *time.Time         // period end (inclusive), nil = unbounded
	Status          *AppointmentStatus // exact status, nil = per IncludeInactive
	ClientPhone     *string            // exact phone match
	IncludeInactive bool               // include CANCELLED / NO_SHOW
}
