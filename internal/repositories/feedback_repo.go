package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/Jonkomane982/student-feedback-app/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	ListAll(ctx context.Context) ([]db_models.Feedback, error)
	GetByID(ctx context.Context, id int) (*db_models.Feedback, error)
	Create(ctx context.Context, feedback *db_models.Feedback) error
	Update(ctx context.Context, id int, feedback *db_models.Feedback) (*db_models.Feedback, error)
	Delete(ctx context.Context, id int) (*db_models.Feedback, error)
	ListByCourse(ctx context.Context, courseCode string) ([]db_models.Feedback, error)
	Stats(ctx context.Context) (*StatsRow, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepositoryInterface {
	return &FeedbackRepository{db: db}
}

// StatsRow is the single aggregate row behind the dashboard.
type StatsRow struct {
	TotalFeedbacks int64   `gorm:"column:total_feedbacks"`
	TotalStudents  int64   `gorm:"column:total_students"`
	TotalCourses   int64   `gorm:"column:total_courses"`
	AverageRating  float64 `gorm:"column:average_rating"`
}

func (r *FeedbackRepository) ListAll(ctx context.Context) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Order("submission_date DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id int) (*db_models.Feedback, error) {
	var feedback db_models.Feedback
	err := r.db.WithContext(ctx).
		Where("feedback_id = ?", id).
		First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// Update replaces the four mutable fields and returns the fresh row.
// submission_date is never touched.
func (r *FeedbackRepository) Update(ctx context.Context, id int, feedback *db_models.Feedback) (*db_models.Feedback, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Feedback{}).
		Where("feedback_id = ?", id).
		Updates(map[string]interface{}{
			"student_name": feedback.StudentName,
			"course_code":  feedback.CourseCode,
			"comments":     feedback.Comments,
			"rating":       feedback.Rating,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the row and hands back what was deleted.
func (r *FeedbackRepository) Delete(ctx context.Context, id int) (*db_models.Feedback, error) {
	feedback, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("feedback_id = ?", id).
		Delete(&db_models.Feedback{}).Error
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *FeedbackRepository) ListByCourse(ctx context.Context, courseCode string) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Where("course_code = ?", courseCode).
		Order("submission_date DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) Stats(ctx context.Context) (*StatsRow, error) {
	var row StatsRow
	err := r.db.WithContext(ctx).
		Table("feedback").
		Select(`
			COUNT(*) AS total_feedbacks,
			COUNT(DISTINCT student_name) AS total_students,
			COUNT(DISTINCT course_code) AS total_courses,
			COALESCE(ROUND(AVG(rating), 2), 0) AS average_rating`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
