package enrollment

import (
	"context"
	"testing"
	"time"

	"salonbooking/internal/database"
	"salonbooking/internal/domain"
	"salonbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The enrollment checks live inside a real transaction, so these tests
// run against an in-memory SQLite database instead of mocks.
func setupEnrollmentTest(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// one shared in-memory database for every pooled connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.CourseClass{}, &domain.CourseEnrollment{}))

	classes := repository.NewCourseClassRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	return NewService(classes, enrollments), db
}

func createClass(t *testing.T, db *gorm.DB, vacancies int, deadline time.Time) int64 {
	t.Helper()

	c := &domain.CourseClass{
		Name:               "Bridal Makeup Workshop",
		Price:              150,
		EnrollmentDeadline: deadline,
		Vacancies:          vacancies,
	}
	require.NoError(t, repository.NewCourseClassRepository(db).Create(context.Background(), c))
	return c.ID
}

func TestService_Enroll_Success(t *testing.T) {
	svc, db := setupEnrollmentTest(t)
	ctx := context.Background()

	classID := createClass(t, db, 3, time.Now().Add(48*time.Hour))

	e, err := svc.Enroll(ctx, classID, 10)

	require.NoError(t, err)
	assert.NotZero(t, e.ID)
	assert.Equal(t, int64(10), e.UserID)
	assert.Equal(t, classID, e.ClassID)
}

func TestService_Enroll_ClassNotFound(t *testing.T) {
	svc, _ := setupEnrollmentTest(t)

	_, err := svc.Enroll(context.Background(), 12345, 10)
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestService_Enroll_ClassFull(t *testing.T) {
	svc, db := setupEnrollmentTest(t)
	ctx := context.Background()

	classID := createClass(t, db, 2, time.Now().Add(48*time.Hour))

	_, err := svc.Enroll(ctx, classID, 1)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, classID, 2)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, classID, 3)
	assert.ErrorIs(t, err, ErrClassFull)

	// the losing enrollment must not have left a row behind
	enrollments := repository.NewEnrollmentRepository(db)
	cnt, err := enrollments.CountByClass(ctx, classID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)
}

func TestService_Enroll_DeadlinePassed(t *testing.T) {
	svc, db := setupEnrollmentTest(t)
	ctx := context.Background()

	classID := createClass(t, db, 5, time.Now().Add(-time.Minute))

	_, err := svc.Enroll(ctx, classID, 10)
	assert.ErrorIs(t, err, ErrDeadlinePassed)
}

func TestService_Enroll_Duplicate(t *testing.T) {
	svc, db := setupEnrollmentTest(t)
	ctx := context.Background()

	classID := createClass(t, db, 5, time.Now().Add(48*time.Hour))

	_, err := svc.Enroll(ctx, classID, 10)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, classID, 10)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestService_Enroll_FullBeforeDeadline(t *testing.T) {
	svc, db := setupEnrollmentTest(t)
	ctx := context.Background()

	// a class both full and past deadline reports CLASS_FULL; the
	// capacity check runs first
	classID := createClass(t, db, 1, time.Now().Add(48*time.Hour))

	_, err := svc.Enroll(ctx, classID, 1)
	require.NoError(t, err)

	require.NoError(t, db.Exec(
		"UPDATE course_classes SET enrollment_deadline = ? WHERE id = ?",
		time.Now().Add(-time.Hour), classID,
	).Error)

	_, err = svc.Enroll(ctx, classID, 2)
	assert.ErrorIs(t, err, ErrClassFull)
}

func TestService_ListClasses_Counts(t *testing.T) {
	svc, db := setupEnrollmentTest(t)
	ctx := context.Background()

	early := createClass(t, db, 4, time.Now().Add(24*time.Hour))
	late := createClass(t, db, 2, time.Now().Add(72*time.Hour))

	_, err := svc.Enroll(ctx, early, 1)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, early, 2)
	require.NoError(t, err)

	listings, err := svc.ListClasses(ctx)

	require.NoError(t, err)
	require.Len(t, listings, 2)
	// soonest deadline first
	assert.Equal(t, early, listings[0].ID)
	assert.Equal(t, 2, listings[0].EnrolledCount)
	assert.Equal(t, 2, listings[0].RemainingVacancies)
	assert.Equal(t, late, listings[1].ID)
	assert.Equal(t, 0, listings[1].EnrolledCount)
	assert.Equal(t, 2, listings[1].RemainingVacancies)
}

func TestService_MyEnrollments(t *testing.T) {
	svc, db := setupEnrollmentTest(t)
	ctx := context.Background()

	classID := createClass(t, db, 4, time.Now().Add(24*time.Hour))

	_, err := svc.Enroll(ctx, classID, 10)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, classID, 11)
	require.NoError(t, err)

	mine, err := svc.MyEnrollments(ctx, 10)

	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, classID, mine[0].ClassID)
	assert.Equal(t, "Bridal Makeup Workshop", mine[0].ClassName)
}
