package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

type enrollmentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id"`
	ClassID   int64     `gorm:"column:class_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (enrollmentModel) TableName() string { return "course_enrollments" }

// EnrollmentDetails is a listing row with the joined class data.
type EnrollmentDetails struct {
	ID                 int64     `gorm:"column:id" json:"id"`
	ClassID            int64     `gorm:"column:class_id" json:"class_id"`
	ClassName          string    `gorm:"column:class_name" json:"class_name"`
	Price              float64   `gorm:"column:price" json:"price"`
	EnrollmentDeadline time.Time `gorm:"column:enrollment_deadline" json:"enrollment_deadline"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"created_at"`
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]EnrollmentDetails, error) {
	q := `
SELECT ce.id, ce.class_id, cc.name AS class_name, cc.price, cc.enrollment_deadline, ce.created_at
FROM course_enrollments ce
JOIN course_classes cc ON cc.id = ce.class_id
WHERE ce.user_id = ?
ORDER BY ce.created_at DESC
`
	var rows []EnrollmentDetails
	tx := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if rows == nil {
		rows = []EnrollmentDetails{}
	}
	return rows, nil
}

func (r *EnrollmentRepository) CountByClass(ctx context.Context, classID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&enrollmentModel{}).
		Where("class_id = ?", classID).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
