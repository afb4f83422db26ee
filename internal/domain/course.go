package domain

import "time"

// Course is online video content; it has no enrollment mechanics.
type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	YoutubeURL  string    `json:"youtube_url" validate:"required,url"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseClass is an in-person class with a seat ceiling and an
// enrollment deadline.
type CourseClass struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name" validate:"required"`
	Description        string    `json:"description,omitempty"`
	Price              float64   `json:"price" validate:"gte=0"`
	EnrollmentDeadline time.Time `json:"enrollment_deadline"`
	Vacancies          int       `json:"vacancies" validate:"gt=0"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CourseEnrollment claims one seat in a class. At most one row may
// exist per (user, class) pair; rows are never updated.
type CourseEnrollment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_class"`
	ClassID   int64     `json:"class_id" gorm:"uniqueIndex:idx_enrollment_user_class"`
	CreatedAt time.Time `json:"created_at"`
}
