package notifyservice

// Event types sent to the notification service.
const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentConfirmed = "appointment.confirmed"
	EventAppointmentCancelled = "appointment.cancelled"
	EventInspectionCompleted  = "inspection.completed"
)

// AppointmentEvent notification payload about an appointment state change
type AppointmentEvent struct {
	Type             string  `json:"type"`
	AppointmentID    int64   `json:"appointment_id"`
	ConfirmationCode string  `json:"confirmation_code"`
	ClientName       string  `json:"client_name"`
	ClientPhone      string  `json:"client_phone"`
	ClientEmail      *string `json:"client_email,omitempty"`
	VehiclePlate     string  `json:"vehicle_plate"`
	AppointmentDate  string  `json:"appointment_date"` // YYYY-MM-DD
	StartTime        string  `json:"start_time"`       // HH:MM
	Status           string  `json:"status"`
	ItpResult        *string `json:"itp_result,omitempty"`
}
