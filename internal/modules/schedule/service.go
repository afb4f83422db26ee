package schedule

import (
	"context"
	"errors"
	"time"

	"salonbooking/internal/domain"
	"salonbooking/internal/repository"

	"gorm.io/gorm"
)

// Service manages the AVAILABLE -> BOOKED -> CANCELED lifecycle of
// appointment slots.
type Service struct {
	appointments AppointmentRepository
	services     ServiceReader
}

func NewService(appointments AppointmentRepository, services ServiceReader) *Service {
	return &Service{
		appointments: appointments,
		services:     services,
	}
}

// CreateSlot creates an AVAILABLE slot for an existing service.
// Overlapping slots for the same service are allowed; the calendar is
// whatever the administrator publishes.
func (s *Service) CreateSlot(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	start, err := combineDayTime(day, req.StartTime)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := combineDayTime(day, req.EndTime)
	if err != nil {
		return nil, ErrValidation
	}

	if !end.After(start) {
		return nil, ErrValidation
	}

	if _, err := s.services.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	a := &domain.Appointment{
		ServiceID: req.ServiceID,
		Date:      day,
		StartTime: start,
		EndTime:   end,
		Status:    domain.AppointmentAvailable,
	}

	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListDay returns a day's slots. The admin view carries every status
// plus client names; the public view only AVAILABLE slots.
func (s *Service) ListDay(ctx context.Context, dateStr string, adminView bool) ([]repository.AppointmentDetails, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	rows, err := s.appointments.ListByDay(ctx, dayStart, dayEnd, !adminView)
	if err != nil {
		return nil, err
	}

	if !adminView {
		// the public listing never exposes who holds other slots
		for i := range rows {
			rows[i].ClientID = nil
			rows[i].ClientName = nil
		}
	}
	return rows, nil
}

func (s *Service) MyAppointments(ctx context.Context, clientID int64) ([]repository.AppointmentDetails, error) {
	return s.appointments.ListByClient(ctx, clientID)
}

// BookSlot claims a slot for a client. The repository update only
// matches rows still AVAILABLE, so of two racing bookings exactly one
// sees an affected row; the other fails with ErrNotFound.
func (s *Service) BookSlot(ctx context.Context, slotID, clientID int64) (*domain.Appointment, error) {
	ok, err := s.appointments.Book(ctx, slotID, clientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	return s.appointments.GetByID(ctx, slotID)
}

// CancelSlot cancels a booking owned by the caller. Past appointments
// cannot be canceled; the client reference stays on the row.
func (s *Service) CancelSlot(ctx context.Context, slotID, clientID int64) (*domain.Appointment, error) {
	a, err := s.appointments.GetOwnedByClient(ctx, slotID, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if a.StartTime.Before(time.Now()) {
		return nil, ErrPastAppointment
	}

	if err := s.appointments.Cancel(ctx, a.ID); err != nil {
		return nil, err
	}

	a.Status = domain.AppointmentCanceled
	return a, nil
}

func combineDayTime(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
