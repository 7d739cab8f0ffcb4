package db_models

import (
	"time"
)

type Feedback struct {
	FeedbackID     int       `gorm:"column:feedback_id;primaryKey;autoIncrement" json:"feedback_id"`
	StudentName    string    `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	CourseCode     string    `gorm:"column:course_code;type:varchar(20);not null" json:"course_code"`
	Comments       string    `gorm:"column:comments;type:text;not null" json:"comments"`
	Rating         int       `gorm:"column:rating;type:int;not null;check:rating >= 1 AND rating <= 5" json:"rating"` // Rating between 1 and 5
	SubmissionDate time.Time `gorm:"column:submission_date;autoCreateTime" json:"submission_date"`
}

func (Feedback) TableName() string {
	return "feedback"
}
