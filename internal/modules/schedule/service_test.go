package schedule

import (
	"context"
	"testing"
	"time"

	"salonbooking/internal/domain"
	"salonbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByDay(ctx context.Context, dayStart, dayEnd time.Time, onlyAvailable bool) ([]repository.AppointmentDetails, error) {
	args := m.Called(ctx, dayStart, dayEnd, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AppointmentDetails), args.Error(1)
}

func (m *MockAppointmentRepository) ListByClient(ctx context.Context, clientID int64) ([]repository.AppointmentDetails, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AppointmentDetails), args.Error(1)
}

func (m *MockAppointmentRepository) Book(ctx context.Context, id, clientID int64) (bool, error) {
	args := m.Called(ctx, id, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) GetOwnedByClient(ctx context.Context, id, clientID int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockServiceReader struct {
	mock.Mock
}

func (m *MockServiceReader) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func newTestService() (*Service, *MockAppointmentRepository, *MockServiceReader) {
	appts := new(MockAppointmentRepository)
	services := new(MockServiceReader)
	return NewService(appts, services), appts, services
}

func TestService_CreateSlot_Success(t *testing.T) {
	svc, appts, services := newTestService()
	ctx := context.Background()

	services.On("GetByID", ctx, int64(1)).Return(&domain.Service{ID: 1, Name: "Haircut"}, nil)
	appts.On("Create", ctx, mock.AnythingOfType("*domain.Appointment")).Return(nil)

	a, err := svc.CreateSlot(ctx, CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "2026-10-01",
		StartTime: "09:00",
		EndTime:   "09:45",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), a.ID)
	assert.Equal(t, domain.AppointmentAvailable, a.Status)
	assert.Equal(t, 9, a.StartTime.Hour())
	assert.True(t, a.EndTime.After(a.StartTime))
	appts.AssertExpectations(t)
}

func TestService_CreateSlot_StartNotBeforeEnd(t *testing.T) {
	svc, appts, _ := newTestService()

	for _, end := range []string{"09:00", "08:30"} {
		_, err := svc.CreateSlot(context.Background(), CreateAppointmentRequest{
			ServiceID: 1,
			Date:      "2026-10-01",
			StartTime: "09:00",
			EndTime:   end,
		})
		assert.ErrorIs(t, err, ErrValidation)
	}
	appts.AssertNotCalled(t, "Create")
}

func TestService_CreateSlot_BadDate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateSlot(context.Background(), CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "01/10/2026",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateSlot_UnknownService(t *testing.T) {
	svc, appts, services := newTestService()
	ctx := context.Background()

	services.On("GetByID", ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateSlot(ctx, CreateAppointmentRequest{
		ServiceID: 42,
		Date:      "2026-10-01",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	appts.AssertNotCalled(t, "Create")
}

func TestService_BookSlot_Success(t *testing.T) {
	svc, appts, _ := newTestService()
	ctx := context.Background()
	clientID := int64(7)

	appts.On("Book", ctx, int64(5), clientID).Return(true, nil)
	appts.On("GetByID", ctx, int64(5)).Return(&domain.Appointment{
		ID:       5,
		ClientID: &clientID,
		Status:   domain.AppointmentBooked,
	}, nil)

	a, err := svc.BookSlot(ctx, 5, clientID)

	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentBooked, a.Status)
	assert.Equal(t, clientID, *a.ClientID)
}

func TestService_BookSlot_RaceLoser(t *testing.T) {
	svc, appts, _ := newTestService()
	ctx := context.Background()

	// the conditional update matched zero rows: slot gone or taken
	appts.On("Book", ctx, int64(5), int64(7)).Return(false, nil)

	_, err := svc.BookSlot(ctx, 5, 7)
	assert.ErrorIs(t, err, ErrNotFound)
	appts.AssertNotCalled(t, "GetByID")
}

func TestService_CancelSlot_Success(t *testing.T) {
	svc, appts, _ := newTestService()
	ctx := context.Background()
	clientID := int64(7)

	appts.On("GetOwnedByClient", ctx, int64(5), clientID).Return(&domain.Appointment{
		ID:        5,
		ClientID:  &clientID,
		StartTime: time.Now().Add(2 * time.Hour),
		Status:    domain.AppointmentBooked,
	}, nil)
	appts.On("Cancel", ctx, int64(5)).Return(nil)

	a, err := svc.CancelSlot(ctx, 5, clientID)

	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentCanceled, a.Status)
	// history keeps the client reference
	assert.Equal(t, clientID, *a.ClientID)
	appts.AssertExpectations(t)
}

func TestService_CancelSlot_NotOwner(t *testing.T) {
	svc, appts, _ := newTestService()
	ctx := context.Background()

	appts.On("GetOwnedByClient", ctx, int64(5), int64(8)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CancelSlot(ctx, 5, 8)
	assert.ErrorIs(t, err, ErrNotFound)
	appts.AssertNotCalled(t, "Cancel")
}

func TestService_CancelSlot_AlreadyStarted(t *testing.T) {
	svc, appts, _ := newTestService()
	ctx := context.Background()
	clientID := int64(7)

	appts.On("GetOwnedByClient", ctx, int64(5), clientID).Return(&domain.Appointment{
		ID:        5,
		ClientID:  &clientID,
		StartTime: time.Now().Add(-time.Hour),
		Status:    domain.AppointmentBooked,
	}, nil)

	_, err := svc.CancelSlot(ctx, 5, clientID)
	assert.ErrorIs(t, err, ErrPastAppointment)
	appts.AssertNotCalled(t, "Cancel")
}

func TestService_ListDay_PublicHidesClients(t *testing.T) {
	svc, appts, _ := newTestService()
	ctx := context.Background()
	clientID := int64(7)
	clientName := "Maria"

	dayStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	appts.On("ListByDay", ctx, dayStart, dayStart.Add(24*time.Hour), true).Return([]repository.AppointmentDetails{
		{ID: 1, Status: string(domain.AppointmentAvailable), ClientID: &clientID, ClientName: &clientName},
	}, nil)

	rows, err := svc.ListDay(ctx, "2026-10-01", false)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Nil(t, rows[0].ClientID)
	assert.Nil(t, rows[0].ClientName)
}

func TestService_ListDay_BadDate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListDay(context.Background(), "not-a-date", true)
	assert.ErrorIs(t, err, ErrValidation)
}
