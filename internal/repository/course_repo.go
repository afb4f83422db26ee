package repository

import (
	"context"
	"time"

	"salonbooking/internal/domain"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

type courseModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description *string   `gorm:"column:description"`
	YoutubeURL  string    `gorm:"column:youtube_url"`
	Published   bool      `gorm:"column:published"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (courseModel) TableName() string { return "courses" }

func toDomainCourse(m courseModel) *domain.Course {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Course{
		ID:          m.ID,
		Title:       m.Title,
		Description: desc,
		YoutubeURL:  m.YoutubeURL,
		Published:   m.Published,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toCourseModel(c *domain.Course) courseModel {
	var desc *string
	if c.Description != "" {
		v := c.Description
		desc = &v
	}

	return courseModel{
		ID:          c.ID,
		Title:       c.Title,
		Description: desc,
		YoutubeURL:  c.YoutubeURL,
		Published:   c.Published,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	m := toCourseModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCourse(m)
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	var m courseModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCourse(m), nil
}

// List returns all courses; with publishedOnly set it is the public
// storefront variant.
func (r *CourseRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Course, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}

	var models []courseModel
	tx := q.Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Course, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainCourse(m))
	}
	return out, nil
}

func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) error {
	m := toCourseModel(c)
	tx := r.db.WithContext(ctx).Model(&courseModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"title":       m.Title,
		"description": m.Description,
		"youtube_url": m.YoutubeURL,
		"published":   m.Published,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&courseModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
