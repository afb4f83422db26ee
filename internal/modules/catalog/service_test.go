package catalog

import (
	"context"
	"testing"
	"time"

	"salonbooking/internal/database"
	"salonbooking/internal/domain"
	"salonbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogTest(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Service{},
		&domain.Product{},
		&domain.Course{},
		&domain.CourseClass{},
		&domain.CourseEnrollment{},
	))

	return NewService(
		repository.NewServiceRepository(db),
		repository.NewProductRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCourseClassRepository(db),
	)
}

func TestService_ServiceCRUD(t *testing.T) {
	svc := setupCatalogTest(t)
	ctx := context.Background()

	created, err := svc.CreateService(ctx, ServiceRequest{
		Name:     "Haircut",
		Price:    35,
		Duration: 45,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := svc.UpdateService(ctx, created.ID, ServiceRequest{
		Name:     "Haircut & Style",
		Price:    45,
		Duration: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, "Haircut & Style", updated.Name)
	assert.Equal(t, 60, updated.Duration)

	list, err := svc.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteService(ctx, created.ID))

	list, err = svc.ListServices(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_CreateService_Invalid(t *testing.T) {
	svc := setupCatalogTest(t)

	_, err := svc.CreateService(context.Background(), ServiceRequest{
		Name:     "",
		Price:    -5,
		Duration: 0,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Name")
	assert.Contains(t, verr.Fields, "Price")
	assert.Contains(t, verr.Fields, "Duration")
}

func TestService_UpdateService_NotFound(t *testing.T) {
	svc := setupCatalogTest(t)

	_, err := svc.UpdateService(context.Background(), 999, ServiceRequest{
		Name:     "Haircut",
		Price:    35,
		Duration: 45,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteProduct_NotFound(t *testing.T) {
	svc := setupCatalogTest(t)

	err := svc.DeleteProduct(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListCourses_PublishedOnly(t *testing.T) {
	svc := setupCatalogTest(t)
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, CourseRequest{
		Title:      "Makeup Basics",
		YoutubeURL: "https://youtube.com/watch?v=abc123",
		Published:  true,
	})
	require.NoError(t, err)
	_, err = svc.CreateCourse(ctx, CourseRequest{
		Title:      "Advanced Coloring",
		YoutubeURL: "https://youtube.com/watch?v=def456",
		Published:  false,
	})
	require.NoError(t, err)

	public, err := svc.ListCourses(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Makeup Basics", public[0].Title)

	all, err := svc.ListCourses(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_ClassCRUD(t *testing.T) {
	svc := setupCatalogTest(t)
	ctx := context.Background()

	deadline := time.Now().Add(14 * 24 * time.Hour).Truncate(time.Second)
	created, err := svc.CreateClass(ctx, CourseClassRequest{
		Name:      "Nail Art Workshop",
		Price:     120,
		Vacancies: 8,
	}, deadline)
	require.NoError(t, err)

	_, err = svc.CreateClass(ctx, CourseClassRequest{
		Name:      "Broken",
		Price:     120,
		Vacancies: 0,
	}, deadline)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Vacancies")

	list, err := svc.ListClasses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, 0, list[0].EnrolledCount)
}
