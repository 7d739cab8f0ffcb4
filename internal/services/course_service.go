package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Jonkomane982/student-feedback-app/internal/models/db_models"
	"github.com/Jonkomane982/student-feedback-app/internal/repositories"
	"github.com/Jonkomane982/student-feedback-app/pkg/utils"
)

type CourseServiceInterface interface {
	ListCourses(ctx context.Context) ([]db_models.Course, error)
	GetCourse(ctx context.Context, id int) (*db_models.Course, error)
}

type CourseService struct {
	courseRepo repositories.CourseRepositoryInterface
}

func NewCourseService(courseRepo repositories.CourseRepositoryInterface) CourseServiceInterface {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]db_models.Course, error) {
	return s.courseRepo.ListAll(ctx)
}

func (s *CourseService) GetCourse(ctx context.Context, id int) (*db_models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}
