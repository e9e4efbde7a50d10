package create_appointment

import (
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	createAppointment "github.com/itpmanager/ITP-SchedulingService/internal/usecase/create_appointment"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`

	VehiclePlate    string  `json:"vehiclePlate"`
	VehicleMake     *string `json:"vehicleMake,omitempty"`
	VehicleModel    *string `json:"vehicleModel,omitempty"`
	VehicleYear     *int    `json:"vehicleYear,omitempty"`
	VehicleCategory string  `json:"vehicleCategory"`

	AppointmentDate string  `json:"appointmentDate"` // "2026-03-15"
	StartTime       string  `json:"startTime"`       // "10:00"
	ServiceType     string  `json:"serviceType"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	ServiceNotes    *string `json:"serviceNotes,omitempty"`
}

// AppointmentResponse HTTP response model
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

	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	ServiceType     string  `json:"serviceType"`
	ServiceNotes    *string `json:"serviceNotes,omitempty"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName:      r.ClientName,
		ClientPhone:     r.ClientPhone,
		ClientEmail:     r.ClientEmail,
		VehiclePlate:    r.VehiclePlate,
		VehicleMake:     r.VehicleMake,
		VehicleModel:    r.VehicleModel,
		VehicleYear:     r.VehicleYear,
		VehicleCategory: domain.VehicleCategory(r.VehicleCategory),
		Date:            date,
		StartTime:       startTime,
		ServiceType:     domain.ServiceType(r.ServiceType),
		DurationMinutes: r.DurationMinutes,
		ServiceNotes:    r.ServiceNotes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		ConfirmationCode: resp.ConfirmationCode,
		ClientID:         resp.ClientID,
		ClientName:       resp.ClientName,
		ClientPhone:      resp.ClientPhone,
		ClientEmail:      resp.ClientEmail,
		VehiclePlate:     resp.VehiclePlate,
		VehicleMake:      resp.VehicleMake,
		VehicleModel:     resp.VehicleModel,
		VehicleYear:      resp.VehicleYear,
		VehicleCategory:  string(resp.VehicleCategory),
		AppointmentDate:  resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		ServiceType:      string(resp.ServiceType),
		ServiceNotes:     resp.ServiceNotes,
		Status:           string(resp.Status),
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
