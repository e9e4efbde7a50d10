package create_appointment

import (
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

// Request booking request. Client and vehicle data arrive inline and are
// stored as a snapshot on the appointment; registration is not required.
type Request struct {
	ClientName  string
	ClientPhone string
	ClientEmail *string

	VehiclePlate    string
	VehicleMake     *string
	VehicleModel    *string
	VehicleYear     *int
	VehicleCategory domain.VehicleCategory

	Date            time.Time
	StartTime       types.TimeString
	ServiceType     domain.ServiceType
	DurationMinutes *int // optional override of the service default
	ServiceNotes    *string
}

// Response the created appointment
type Response struct {
	ID               int64
	ConfirmationCode string
	ClientID         *int64
	ClientName       string
	ClientPhone      string
	ClientEmail      *string

	VehiclePlate    string
	VehicleMake     *string
	VehicleModel    *string
	VehicleYear     *int
	VehicleCategory domain.VehicleCategory

	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	ServiceType     domain.ServiceType
	ServiceNotes    *string

	Status    domain.AppointmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
