package domain

import "github.com/itpmanager/ITP-SchedulingService/pkg/types"

// AppointmentUpdate partial correction of non-status appointment fields.
// Nil means "leave unchanged". Status is deliberately absent: all status
// changes go through the named transition operations so the audit
// timestamps stay consistent with the status.
type AppointmentUpdate struct {
	ClientID    *int64
	ClientName  *string
	ClientPhone *string
	ClientEmail *string

	VehiclePlate    *string
	VehicleMake     *string
	VehicleModel    *string
	VehicleYear     *int
	VehicleCategory *VehicleCategory

	AppointmentDate *string // YYYY-MM-DD
	StartTime       *types.TimeString
	// EndTime is derived, set by the service whenever StartTime or
	// DurationMinutes change
	EndTime         *types.TimeString
	DurationMinutes *int

	ServiceType  *ServiceType
	ServiceNotes *string
}

// IsEmpty reports whether the update changes nothing.
func (u *AppointmentUpdate) IsEmpty() bool {
	return u.ClientID == nil && u.ClientName == nil && u.ClientPhone == nil &&
		u.ClientEmail == nil && u.VehiclePlate == nil && u.VehicleMake == nil &&
		u.VehicleModel == nil && u.VehicleYear == nil && u.VehicleCategory == nil &&
		u.AppointmentDate == nil && u.StartTime == nil && u.DurationMinutes == nil &&
		u.ServiceType == nil && u.ServiceNotes == nil
}
