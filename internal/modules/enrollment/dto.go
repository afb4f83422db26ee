package enrollment

import "time"

// ClassListing is the public class view with the derived remaining
// vacancy count.
type ClassListing struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Price              float64   `json:"price"`
	EnrollmentDeadline time.Time `json:"enrollment_deadline"`
	Vacancies          int       `json:"vacancies"`
	EnrolledCount      int       `json:"enrolled_count"`
	RemainingVacancies int       `json:"remaining_vacancies"`
}
