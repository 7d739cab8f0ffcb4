package response_models

type DashboardStats struct {
	TotalFeedbacks int64   `json:"total_feedbacks"`
	TotalStudents  int64   `json:"total_students"`
	TotalCourses   int64   `json:"total_courses"`
	// Rounded to 2 decimal places; 0 when no feedback exists yet.
	AverageRating float64 `json:"average_rating"`
}
