package domain

import "time"

type AppointmentStatus string

const (
	AppointmentAvailable AppointmentStatus = "AVAILABLE"
	AppointmentBooked    AppointmentStatus = "BOOKED"
	AppointmentCanceled  AppointmentStatus = "CANCELED"
)

// Appointment is a bookable time window for one service.
// ClientID is set exactly when the slot is BOOKED; a canceled slot
// keeps its client reference for history.
type Appointment struct {
	ID        int64             `json:"id"`
	ServiceID int64             `json:"service_id"`
	ClientID  *int64            `json:"client_id,omitempty"`
	Date      time.Time         `json:"date"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
