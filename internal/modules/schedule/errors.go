package schedule

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrServiceNotFound = errors.New("service not found")
	ErrNotFound        = errors.New("appointment not found or no longer available")
	ErrPastAppointment = errors.New("appointment already started")
)
