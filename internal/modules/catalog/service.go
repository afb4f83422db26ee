package catalog

import (
	"context"
	"errors"
	"time"

	"salonbooking/internal/domain"
	pkgvalidator "salonbooking/internal/pkg/validator"
	"salonbooking/internal/repository"

	"gorm.io/gorm"
)

// Service is plain CRUD over the catalog records. There is no state
// machine here; field validation happens at the handler boundary.
type Service struct {
	services *repository.ServiceRepository
	products *repository.ProductRepository
	courses  *repository.CourseRepository
	classes  *repository.CourseClassRepository
}

func NewService(
	services *repository.ServiceRepository,
	products *repository.ProductRepository,
	courses *repository.CourseRepository,
	classes *repository.CourseClassRepository,
) *Service {
	return &Service{
		services: services,
		products: products,
		courses:  courses,
		classes:  classes,
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func validateFields(v any) error {
	if fields := pkgvalidator.Validate(v); fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ===== Services =====

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *Service) CreateService(ctx context.Context, req ServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	}
	if err := validateFields(svc); err != nil {
		return nil, err
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req ServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	}
	if err := validateFields(svc); err != nil {
		return nil, err
	}
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, mapNotFound(err)
	}
	return s.services.GetByID(ctx, id)
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	return mapNotFound(s.services.Delete(ctx, id))
}

// ===== Products =====

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, req ProductRequest) (*domain.Product, error) {
	p := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	if err := validateFields(p); err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, req ProductRequest) (*domain.Product, error) {
	p := &domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	if err := validateFields(p); err != nil {
		return nil, err
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, mapNotFound(err)
	}
	return s.products.GetByID(ctx, id)
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return mapNotFound(s.products.Delete(ctx, id))
}

// ===== Courses =====

func (s *Service) ListCourses(ctx context.Context, publishedOnly bool) ([]domain.Course, error) {
	return s.courses.List(ctx, publishedOnly)
}

func (s *Service) CreateCourse(ctx context.Context, req CourseRequest) (*domain.Course, error) {
	c := &domain.Course{
		Title:       req.Title,
		Description: req.Description,
		YoutubeURL:  req.YoutubeURL,
		Published:   req.Published,
	}
	if err := validateFields(c); err != nil {
		return nil, err
	}
	if err := s.courses.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCourse(ctx context.Context, id int64, req CourseRequest) (*domain.Course, error) {
	c := &domain.Course{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		YoutubeURL:  req.YoutubeURL,
		Published:   req.Published,
	}
	if err := validateFields(c); err != nil {
		return nil, err
	}
	if err := s.courses.Update(ctx, c); err != nil {
		return nil, mapNotFound(err)
	}
	return s.courses.GetByID(ctx, id)
}

func (s *Service) DeleteCourse(ctx context.Context, id int64) error {
	return mapNotFound(s.courses.Delete(ctx, id))
}

// ===== Course classes =====

func (s *Service) ListClasses(ctx context.Context) ([]repository.CourseClassWithCount, error) {
	return s.classes.ListWithCounts(ctx)
}

func (s *Service) CreateClass(ctx context.Context, req CourseClassRequest, deadline time.Time) (*domain.CourseClass, error) {
	c := &domain.CourseClass{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		EnrollmentDeadline: deadline,
		Vacancies:          req.Vacancies,
	}
	if err := validateFields(c); err != nil {
		return nil, err
	}
	if err := s.classes.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateClass(ctx context.Context, id int64, req CourseClassRequest, deadline time.Time) (*domain.CourseClass, error) {
	c := &domain.CourseClass{
		ID:                 id,
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		EnrollmentDeadline: deadline,
		Vacancies:          req.Vacancies,
	}
	if err := validateFields(c); err != nil {
		return nil, err
	}
	if err := s.classes.Update(ctx, c); err != nil {
		return nil, mapNotFound(err)
	}
	return s.classes.GetByID(ctx, id)
}

func (s *Service) DeleteClass(ctx context.Context, id int64) error {
	return mapNotFound(s.classes.Delete(ctx, id))
}
