package enrollment

import "errors"

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrClassFull       = errors.New("no vacancies left for this class")
	ErrDeadlinePassed  = errors.New("the enrollment deadline for this class has passed")
	ErrAlreadyEnrolled = errors.New("you are already enrolled in this class")
)
