package schedule

import (
	"context"
	"time"

	"salonbooking/internal/domain"
	"salonbooking/internal/repository"
)

// AppointmentRepository — slot storage as the service sees it
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time, onlyAvailable bool) ([]repository.AppointmentDetails, error)
	ListByClient(ctx context.Context, clientID int64) ([]repository.AppointmentDetails, error)
	Book(ctx context.Context, id, clientID int64) (bool, error)
	GetOwnedByClient(ctx context.Context, id, clientID int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
}

// ServiceReader — referenced service lookup for slot creation
type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
