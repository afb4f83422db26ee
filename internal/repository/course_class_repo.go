package repository

import (
	"context"
	"time"

	"salonbooking/internal/domain"

	"gorm.io/gorm"
)

type CourseClassRepository struct {
	db *gorm.DB
}

func NewCourseClassRepository(db *gorm.DB) *CourseClassRepository {
	return &CourseClassRepository{db: db}
}

type courseClassModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	Name               string    `gorm:"column:name"`
	Description        *string   `gorm:"column:description"`
	Price              float64   `gorm:"column:price"`
	EnrollmentDeadline time.Time `gorm:"column:enrollment_deadline"`
	Vacancies          int       `gorm:"column:vacancies"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (courseClassModel) TableName() string { return "course_classes" }

func toDomainCourseClass(m courseClassModel) *domain.CourseClass {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.CourseClass{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        desc,
		Price:              m.Price,
		EnrollmentDeadline: m.EnrollmentDeadline,
		Vacancies:          m.Vacancies,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toCourseClassModel(c *domain.CourseClass) courseClassModel {
	var desc *string
	if c.Description != "" {
		v := c.Description
		desc = &v
	}

	return courseClassModel{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        desc,
		Price:              c.Price,
		EnrollmentDeadline: c.EnrollmentDeadline,
		Vacancies:          c.Vacancies,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// CourseClassWithCount is a listing row carrying the current
// enrollment count next to the class fields.
type CourseClassWithCount struct {
	ID                 int64     `gorm:"column:id" json:"id"`
	Name               string    `gorm:"column:name" json:"name"`
	Description        *string   `gorm:"column:description" json:"description,omitempty"`
	Price              float64   `gorm:"column:price" json:"price"`
	EnrollmentDeadline time.Time `gorm:"column:enrollment_deadline" json:"enrollment_deadline"`
	Vacancies          int       `gorm:"column:vacancies" json:"vacancies"`
	EnrolledCount      int       `gorm:"column:enrolled_count" json:"enrolled_count"`
}

func (r *CourseClassRepository) Create(ctx context.Context, c *domain.CourseClass) error {
	m := toCourseClassModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCourseClass(m)
	return nil
}

func (r *CourseClassRepository) GetByID(ctx context.Context, id int64) (*domain.CourseClass, error) {
	var m courseClassModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCourseClass(m), nil
}

// ListWithCounts returns classes with their live enrollment counts,
// soonest deadline first.
func (r *CourseClassRepository) ListWithCounts(ctx context.Context) ([]CourseClassWithCount, error) {
	q := `
SELECT cc.id, cc.name, cc.description, cc.price, cc.enrollment_deadline, cc.vacancies,
       COUNT(ce.id) AS enrolled_count
FROM course_classes cc
LEFT JOIN course_enrollments ce ON ce.class_id = cc.id
GROUP BY cc.id, cc.name, cc.description, cc.price, cc.enrollment_deadline, cc.vacancies
ORDER BY cc.enrollment_deadline ASC
`
	var rows []CourseClassWithCount
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *CourseClassRepository) Update(ctx context.Context, c *domain.CourseClass) error {
	m := toCourseClassModel(c)
	tx := r.db.WithContext(ctx).Model(&courseClassModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":                m.Name,
		"description":         m.Description,
		"price":               m.Price,
		"enrollment_deadline": m.EnrollmentDeadline,
		"vacancies":           m.Vacancies,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CourseClassRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&courseClassModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DB exposes the underlying handle for callers that need to run the
// enrollment transaction across class and enrollment rows.
func (r *CourseClassRepository) DB() *gorm.DB {
	return r.db
}
