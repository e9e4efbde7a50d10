package models

import (
	"errors"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

var (
	// ErrInvalidItpResult returned for an unknown inspection outcome
	ErrInvalidItpResult = errors.New("invalid itp result")

	// ErrInvalidDate returned for a malformed date string
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Request models

// CancelRequest staff or client cancellation
type CancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// RarBlockRequest regulatory hold on an appointment
type RarBlockRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// ItpResultRequest records the inspection outcome
type ItpResultRequest struct {
	Result string  `json:"result"`
	Notes  *string `json:"notes,omitempty"`
}

// QuickAdmisRequest the walk-in shortcut. The outcome is always ADMIS,
// only optional notes travel with the request.
type QuickAdmisRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// UpdateAppointmentRequest partial correction of appointment fields.
// Status is deliberately not updatable here.
type UpdateAppointmentRequest struct {
	ClientID    *int64  `json:"clientId,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`

	VehiclePlate    *string `json:"vehiclePlate,omitempty"`
	VehicleMake     *string `json:"vehicleMake,omitempty"`
	VehicleModel    *string `json:"vehicleModel,omitempty"`
	VehicleYear     *int    `json:"vehicleYear,omitempty"`
	VehicleCategory *string `json:"vehicleCategory,omitempty"`

	AppointmentDate *string `json:"appointmentDate,omitempty"` // YYYY-MM-DD
	StartTime       *string `json:"startTime,omitempty"`       // HH:MM
	DurationMinutes *int    `json:"durationMinutes,omitempty"`

	ServiceType  *string `json:"serviceType,omitempty"`
	ServiceNotes *string `json:"serviceNotes,omitempty"`
}

// ToDomainUpdate converts the request into the domain update, validating
// the enum and time fields.
func (r *UpdateAppointmentRequest) ToDomainUpdate() (domain.AppointmentUpdate, error) {
	upd := domain.AppointmentUpdate{
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		ClientPhone:     r.ClientPhone,
		ClientEmail:     r.ClientEmail,
		VehiclePlate:    r.VehiclePlate,
		VehicleMake:     r.VehicleMake,
		VehicleModel:    r.VehicleModel,
		VehicleYear:     r.VehicleYear,
		AppointmentDate: r.AppointmentDate,
		DurationMinutes: r.DurationMinutes,
		ServiceNotes:    r.ServiceNotes,
	}

	if r.VehicleCategory != nil {
		category := domain.VehicleCategory(*r.VehicleCategory)
		if !category.IsValid() {
			return upd, errors.New("invalid vehicle category")
		}
		upd.VehicleCategory = &category
	}

	if r.ServiceType != nil {
		serviceType := domain.ServiceType(*r.ServiceType)
		if !serviceType.IsValid() {
			return upd, errors.New("invalid service type")
		}
		upd.ServiceType = &serviceType
	}

	if r.AppointmentDate != nil {
		if _, err := time.Parse(domain.DateFormat, *r.AppointmentDate); err != nil {
			return upd, ErrInvalidDate
		}
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return upd, err
		}
		upd.StartTime = &startTime
	}

	return upd, nil
}

// Response models

// AppointmentResponse appointment DTO
type AppointmentResponse struct {
	ID               int64   `json:"id"`
	ConfirmationCode string  `json:"confirmationCode"`
	ClientID         *int64  `json:"clientId,omitempty"`
	ClientName       string  `json:"clientName"`
	ClientPhone      string  `json:"clientPhone"`
	ClientEmail      *string `json:"clientEmail,omitempty"`

	VehiclePlate    string  `json:"vehiclePlate"`
	VehicleMake     *string `json:"vehicleMake,omitempty"`
	VehicleModel    *string `json:"vehicleModel,omitempty"`
	VehicleYear     *int    `json:"vehicleYear,omitempty"`
	VehicleCategory string  `json:"vehicleCategory"`

	AppointmentDate string `json:"appointmentDate"` // "2026-03-15"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`

	ServiceType  string  `json:"serviceType"`
	ServiceNotes *string `json:"serviceNotes,omitempty"`

	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	StatusColor string `json:"statusColor"`

	IsRarBlocked bool    `json:"isRarBlocked"`
	RarBlockedAt *string `json:"rarBlockedAt,omitempty"` // ISO 8601
	RarNotes     *string `json:"rarNotes,omitempty"`

	ItpResult *string `json:"itpResult,omitempty"`
	ItpNotes  *string `json:"itpNotes,omitempty"`

	ConfirmedAt  *string `json:"confirmedAt,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"`
	CancelReason *string `json:"cancelReason,omitempty"`

	ReminderSent bool      `json:"reminderSent"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AppointmentListResponse list DTO
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Conversion helpers

// FromDomainAppointment converts the domain model into the DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:               a.ID,
		ConfirmationCode: a.ConfirmationCode,
		ClientID:         a.ClientID,
		ClientName:       a.ClientName,
		ClientPhone:      a.ClientPhone,
		ClientEmail:      a.ClientEmail,
		VehiclePlate:     a.VehiclePlate,
		VehicleMake:      a.VehicleMake,
		VehicleModel:     a.VehicleModel,
		VehicleYear:      a.VehicleYear,
		VehicleCategory:  string(a.VehicleCategory),
		AppointmentDate:  a.AppointmentDate.Format(domain.DateFormat),
		StartTime:        a.StartTime.String(),
		EndTime:          a.EndTime.String(),
		DurationMinutes:  a.DurationMinutes,
		ServiceType:      string(a.ServiceType),
		ServiceNotes:     a.ServiceNotes,
		Status:           string(a.Status),
		StatusLabel:      a.Status.Label(),
		StatusColor:      a.Status.Color(),
		IsRarBlocked:     a.IsRarBlocked,
		RarNotes:         a.RarNotes,
		ItpNotes:         a.ItpNotes,
		CancelReason:     a.CancelReason,
		ReminderSent:     a.ReminderSent,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}

	if a.ItpResult != nil {
		result := string(*a.ItpResult)
		resp.ItpResult = &result
	}
	if a.RarBlockedAt != nil {
		s := a.RarBlockedAt.Format(time.RFC3339)
		resp.RarBlockedAt = &s
	}
	if a.ConfirmedAt != nil {
		s := a.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &s
	}
	if a.CancelledAt != nil {
		s := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &s
	}

	return resp
}

// FromDomainAppointmentList converts a list of domain models into the DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainItpResult converts a string into domain.ItpResult with validation
func ToDomainItpResult(result string) (domain.ItpResult, error) {
	r := domain.ItpResult(result)
	if !r.IsValid() {
		return "", ErrInvalidItpResult
	}
	return r, nil
}
