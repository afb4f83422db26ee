package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"salonbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepository_Book_ConcurrentSingleWinner(t *testing.T) {
	db := newTestDB(t, &domain.Service{}, &domain.Appointment{})
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	svc := domain.Service{Name: "Haircut", Price: 35, Duration: 45}
	require.NoError(t, db.Create(&svc).Error)

	day := time.Now().Add(24 * time.Hour).UTC().Truncate(24 * time.Hour)
	slot := &domain.Appointment{
		ServiceID: svc.ID,
		Date:      day,
		StartTime: day.Add(9 * time.Hour),
		EndTime:   day.Add(9*time.Hour + 45*time.Minute),
		Status:    domain.AppointmentAvailable,
	}
	require.NoError(t, repo.Create(ctx, slot))

	// every client races for the same slot; the conditional update
	// must let exactly one through
	const clients = 8
	results := make([]bool, clients)
	errs := make([]error, clients)

	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = repo.Book(ctx, slot.ID, int64(i+1))
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < clients; i++ {
		require.NoError(t, errs[i])
		if results[i] {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	booked, err := repo.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentBooked, booked.Status)
	require.NotNil(t, booked.ClientID)
}

func TestAppointmentRepository_Book_CanceledSlotNotBookable(t *testing.T) {
	db := newTestDB(t, &domain.Service{}, &domain.Appointment{})
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	svc := domain.Service{Name: "Manicure", Price: 25, Duration: 30}
	require.NoError(t, db.Create(&svc).Error)

	day := time.Now().Add(24 * time.Hour).UTC().Truncate(24 * time.Hour)
	slot := &domain.Appointment{
		ServiceID: svc.ID,
		Date:      day,
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(10*time.Hour + 30*time.Minute),
		Status:    domain.AppointmentCanceled,
	}
	require.NoError(t, repo.Create(ctx, slot))

	ok, err := repo.Book(ctx, slot.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}
