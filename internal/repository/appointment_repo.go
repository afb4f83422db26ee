package repository

import (
	"context"
	"time"

	"salonbooking/internal/domain"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ServiceID int64     `gorm:"column:service_id"`
	ClientID  *int64    `gorm:"column:client_id"`
	Date      time.Time `gorm:"column:date"`
	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentModel) *domain.Appointment {
	return &domain.Appointment{
		ID:        m.ID,
		ServiceID: m.ServiceID,
		ClientID:  m.ClientID,
		Date:      m.Date,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Status:    domain.AppointmentStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toAppointmentModel(a *domain.Appointment) appointmentModel {
	return appointmentModel{
		ID:        a.ID,
		ServiceID: a.ServiceID,
		ClientID:  a.ClientID,
		Date:      a.Date,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AppointmentDetails is a listing row with the joined service data
// and, for the admin view, the client name.
type AppointmentDetails struct {
	ID              int64     `gorm:"column:id" json:"id"`
	ServiceID       int64     `gorm:"column:service_id" json:"service_id"`
	ClientID        *int64    `gorm:"column:client_id" json:"client_id,omitempty"`
	Date            time.Time `gorm:"column:date" json:"date"`
	StartTime       time.Time `gorm:"column:start_time" json:"start_time"`
	EndTime         time.Time `gorm:"column:end_time" json:"end_time"`
	Status          string    `gorm:"column:status" json:"status"`
	ServiceName     string    `gorm:"column:service_name" json:"service_name"`
	ServicePrice    float64   `gorm:"column:service_price" json:"service_price"`
	ServiceDuration int       `gorm:"column:service_duration" json:"service_duration"`
	ClientName      *string   `gorm:"column:client_name" json:"client_name,omitempty"`
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	m := toAppointmentModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAppointment(m)
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var m appointmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAppointment(m), nil
}

// ListByDay returns the appointments of one calendar day ordered by
// start time. With onlyAvailable the listing is the public variant.
func (r *AppointmentRepository) ListByDay(ctx context.Context, dayStart, dayEnd time.Time, onlyAvailable bool) ([]AppointmentDetails, error) {
	q := `
SELECT a.id, a.service_id, a.client_id, a.date, a.start_time, a.end_time, a.status,
       s.name AS service_name, s.price AS service_price, s.duration AS service_duration,
       u.name AS client_name
FROM appointments a
JOIN services s ON s.id = a.service_id
LEFT JOIN users u ON u.id = a.client_id
WHERE a.date >= ? AND a.date < ?
`
	args := []any{dayStart, dayEnd}
	if onlyAvailable {
		q += " AND a.status = ?"
		args = append(args, string(domain.AppointmentAvailable))
	}
	q += " ORDER BY a.start_time ASC"

	var rows []AppointmentDetails
	tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if rows == nil {
		rows = []AppointmentDetails{}
	}
	return rows, nil
}

// ListByClient returns a client's booking history, newest first.
func (r *AppointmentRepository) ListByClient(ctx context.Context, clientID int64) ([]AppointmentDetails, error) {
	q := `
SELECT a.id, a.service_id, a.client_id, a.date, a.start_time, a.end_time, a.status,
       s.name AS service_name, s.price AS service_price, s.duration AS service_duration
FROM appointments a
JOIN services s ON s.id = a.service_id
WHERE a.client_id = ?
ORDER BY a.start_time DESC
`
	var rows []AppointmentDetails
	tx := r.db.WithContext(ctx).Raw(q, clientID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if rows == nil {
		rows = []AppointmentDetails{}
	}
	return rows, nil
}

// Book claims an AVAILABLE slot for a client with a single conditional
// update. When two clients race for the same slot, the first commit
// flips the status and the loser's update matches zero rows.
func (r *AppointmentRepository) Book(ctx context.Context, id, clientID int64) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&appointmentModel{}).
		Where("id = ? AND status = ?", id, string(domain.AppointmentAvailable)).
		Updates(map[string]any{
			"status":    string(domain.AppointmentBooked),
			"client_id": clientID,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// GetOwnedByClient fetches an appointment only if it belongs to the
// given client.
func (r *AppointmentRepository) GetOwnedByClient(ctx context.Context, id, clientID int64) (*domain.Appointment, error) {
	var m appointmentModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", id, clientID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAppointment(m), nil
}

// Cancel marks the slot CANCELED. The client reference stays in place
// so the history view keeps showing who held it.
func (r *AppointmentRepository) Cancel(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&appointmentModel{}).
		Where("id = ?", id).
		Update("status", string(domain.AppointmentCanceled)).Error
}
