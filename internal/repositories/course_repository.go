package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/Jonkomane982/student-feedback-app/internal/models/db_models"
)

type CourseRepositoryInterface interface {
	ListAll(ctx context.Context) ([]db_models.Course, error)
	GetByID(ctx context.Context, id int) (*db_models.Course, error)
}

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepositoryInterface {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) ListAll(ctx context.Context) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := r.db.WithContext(ctx).
		Order("course_code").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) GetByID(ctx context.Context, id int) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}
