package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Jonkomane982/student-feedback-app/internal/models/db_models"
	"github.com/Jonkomane982/student-feedback-app/internal/models/response_models"
	"github.com/Jonkomane982/student-feedback-app/internal/repositories"
	"github.com/Jonkomane982/student-feedback-app/pkg/utils"
)

type FeedbackServiceInterface interface {
	ListFeedback(ctx context.Context) ([]db_models.Feedback, error)
	GetFeedback(ctx context.Context, id int) (*db_models.Feedback, error)
	SubmitFeedback(ctx context.Context, studentName, courseCode, comments string, rating int) (*db_models.Feedback, error)
	UpdateFeedback(ctx context.Context, id int, studentName, courseCode, comments string, rating int) (*db_models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int) (*db_models.Feedback, error)
	ListFeedbackByCourse(ctx context.Context, courseCode string) ([]db_models.Feedback, error)
	DashboardStats(ctx context.Context) (*response_models.DashboardStats, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// validateSubmission re-checks what the request binding already enforced.
// The database CHECK constraint is the final line of defense.
func validateSubmission(studentName, courseCode, comments string, rating int) error {
	if strings.TrimSpace(studentName) == "" ||
		strings.TrimSpace(courseCode) == "" ||
		strings.TrimSpace(comments) == "" {
		return utils.ErrMissingFields
	}
	if rating < 1 || rating > 5 {
		return utils.ErrInvalidRating
	}
	return nil
}

func (s *FeedbackService) ListFeedback(ctx context.Context) ([]db_models.Feedback, error) {
	return s.feedbackRepo.ListAll(ctx)
}

func (s *FeedbackService) GetFeedback(ctx context.Context, id int) (*db_models.Feedback, error) {
	feedback, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrFeedbackNotFound
		}
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackService) SubmitFeedback(ctx context.Context, studentName, courseCode, comments string, rating int) (*db_models.Feedback, error) {
	if err := validateSubmission(studentName, courseCode, comments, rating); err != nil {
		return nil, err
	}

	feedback := &db_models.Feedback{
		StudentName: studentName,
		CourseCode:  courseCode,
		Comments:    comments,
		Rating:      rating,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackService) UpdateFeedback(ctx context.Context, id int, studentName, courseCode, comments string, rating int) (*db_models.Feedback, error) {
	if err := validateSubmission(studentName, courseCode, comments, rating); err != nil {
		return nil, err
	}

	feedback := &db_models.Feedback{
		StudentName: studentName,
		CourseCode:  courseCode,
		Comments:    comments,
		Rating:      rating,
	}

	updated, err := s.feedbackRepo.Update(ctx, id, feedback)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrFeedbackNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, id int) (*db_models.Feedback, error) {
	deleted, err := s.feedbackRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrFeedbackNotFound
		}
		return nil, err
	}
	return deleted, nil
}

func (s *FeedbackService) ListFeedbackByCourse(ctx context.Context, courseCode string) ([]db_models.Feedback, error) {
	return s.feedbackRepo.ListByCourse(ctx, courseCode)
}

func (s *FeedbackService) DashboardStats(ctx context.Context) (*response_models.DashboardStats, error) {
	row, err := s.feedbackRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &response_models.DashboardStats{
		TotalFeedbacks: row.TotalFeedbacks,
		TotalStudents:  row.TotalStudents,
		TotalCourses:   row.TotalCourses,
		AverageRating:  row.AverageRating,
	}, nil
}
