package request_models

type FeedbackRequest struct {
	StudentName string `json:"student_name" binding:"required,max=100"`
	CourseCode  string `json:"course_code" binding:"required,max=20"`
	Comments    string `json:"comments" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
}
