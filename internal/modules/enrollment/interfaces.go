package enrollment

import (
	"context"

	"salonbooking/internal/repository"

	"gorm.io/gorm"
)

// ClassRepositoryInterface — class storage plus the DB handle the
// enrollment transaction runs on
type ClassRepositoryInterface interface {
	ListWithCounts(ctx context.Context) ([]repository.CourseClassWithCount, error)
	DB() *gorm.DB
}

// EnrollmentRepositoryInterface — read side for the client's own list
type EnrollmentRepositoryInterface interface {
	ListByUser(ctx context.Context, userID int64) ([]repository.EnrollmentDetails, error)
}
