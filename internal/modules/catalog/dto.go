package catalog

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	YoutubeURL  string `json:"youtube_url" binding:"required,url"`
	Published   bool   `json:"published"`
}

type CourseClassRequest struct {
	Name               string  `json:"name" binding:"required"`
	Description        string  `json:"description"`
	Price              float64 `json:"price" binding:"gte=0"`
	EnrollmentDeadline string  `json:"enrollment_deadline" binding:"required"` // RFC 3339
	Vacancies          int     `json:"vacancies" binding:"required,gt=0"`
}
