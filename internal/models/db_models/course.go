package db_models

type Course struct {
	CourseID     int    `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	CourseCode   string `gorm:"column:course_code;type:varchar(20);not null;unique" json:"course_code"`
	CourseName   string `gorm:"column:course_name;type:varchar(150);not null" json:"course_name"`
	LecturerName string `gorm:"column:lecturer_name;type:varchar(100)" json:"lecturer_name"`
}

func (Course) TableName() string {
	return "courses"
}
