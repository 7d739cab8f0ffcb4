package utils

import "errors"

var (
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrMissingFields    = errors.New("student_name, course_code, comments and rating are required")
)
