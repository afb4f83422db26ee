package enrollment

import (
	"context"
	"errors"
	"time"

	"salonbooking/internal/domain"
	"salonbooking/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service enforces capacity, deadline, and uniqueness when a client
// claims a seat in a class.
type Service struct {
	classes     ClassRepositoryInterface
	enrollments EnrollmentRepositoryInterface
}

func NewService(classes ClassRepositoryInterface, enrollments EnrollmentRepositoryInterface) *Service {
	return &Service{
		classes:     classes,
		enrollments: enrollments,
	}
}

type classRow struct {
	ID                 int64     `gorm:"column:id"`
	Vacancies          int       `gorm:"column:vacancies"`
	EnrollmentDeadline time.Time `gorm:"column:enrollment_deadline"`
}

func (classRow) TableName() string { return "course_classes" }

type enrollmentRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id"`
	ClassID   int64     `gorm:"column:class_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (enrollmentRow) TableName() string { return "course_enrollments" }

// Enroll runs the whole check-then-insert sequence inside one
// transaction so two concurrent enrollments cannot both pass the
// capacity check. On PostgreSQL the class row is locked FOR UPDATE;
// SQLite has no row locks but serializes writing transactions anyway.
// The unique index on (user_id, class_id) backstops the duplicate
// check either way.
func (s *Service) Enroll(ctx context.Context, classID, userID int64) (*domain.CourseEnrollment, error) {
	now := time.Now()
	var result *domain.CourseEnrollment

	err := s.classes.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var class classRow
		if err := q.Where("id = ?", classID).First(&class).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return err
		}

		var enrolled int64
		if err := tx.Model(&enrollmentRow{}).Where("class_id = ?", classID).Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled >= int64(class.Vacancies) {
			return ErrClassFull
		}

		if !now.Before(class.EnrollmentDeadline) {
			return ErrDeadlinePassed
		}

		var dup int64
		if err := tx.Model(&enrollmentRow{}).Where("user_id = ? AND class_id = ?", userID, classID).Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrAlreadyEnrolled
		}

		row := enrollmentRow{UserID: userID, ClassID: classID}
		if err := tx.Create(&row).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrAlreadyEnrolled
			}
			return err
		}

		result = &domain.CourseEnrollment{
			ID:        row.ID,
			UserID:    userID,
			ClassID:   classID,
			CreatedAt: row.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListClasses returns every class with its derived remaining vacancy
// count for the public storefront.
func (s *Service) ListClasses(ctx context.Context) ([]ClassListing, error) {
	rows, err := s.classes.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ClassListing, 0, len(rows))
	for _, r := range rows {
		var desc string
		if r.Description != nil {
			desc = *r.Description
		}
		out = append(out, ClassListing{
			ID:                 r.ID,
			Name:               r.Name,
			Description:        desc,
			Price:              r.Price,
			EnrollmentDeadline: r.EnrollmentDeadline,
			Vacancies:          r.Vacancies,
			EnrolledCount:      r.EnrolledCount,
			RemainingVacancies: r.Vacancies - r.EnrolledCount,
		})
	}
	return out, nil
}

func (s *Service) MyEnrollments(ctx context.Context, userID int64) ([]repository.EnrollmentDetails, error) {
	return s.enrollments.ListByUser(ctx, userID)
}
