package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jonkomane982/student-feedback-app/internal/models/request_models"
	"github.com/Jonkomane982/student-feedback-app/internal/services"
	"github.com/Jonkomane982/student-feedback-app/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// ListFeedback godoc
// @Summary List all feedback
// @Description Get every feedback entry, newest first
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	feedbacks, err := f.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while fetching feedback")
		return
	}

	utils.RespondList(c, feedbacks, len(feedbacks))
}

// GetFeedback godoc
// @Summary Get feedback by ID
// @Description Fetch a single feedback entry
// @Tags Feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /feedback/{id} [get]
func (f *FeedbackController) GetFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	feedback, err := f.feedbackService.GetFeedback(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while fetching feedback")
		return
	}

	utils.RespondSuccess(c, feedback, "")
}

// CreateFeedback godoc
// @Summary Submit feedback
// @Description Record a student's rating and comment for a course
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.FeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) CreateFeedback(c *gin.Context) {
	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please provide student_name, course_code, comments, and rating")
		return
	}

	feedback, err := f.feedbackService.SubmitFeedback(
		c.Request.Context(), req.StudentName, req.CourseCode, req.Comments, req.Rating)
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while creating feedback")
		return
	}

	utils.RespondCreated(c, feedback, "Feedback submitted successfully")
}

// UpdateFeedback godoc
// @Summary Update feedback
// @Description Replace the mutable fields of a feedback entry
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path int true "Feedback ID"
// @Param request body request_models.FeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /feedback/{id} [put]
func (f *FeedbackController) UpdateFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please provide student_name, course_code, comments, and rating")
		return
	}

	feedback, err := f.feedbackService.UpdateFeedback(
		c.Request.Context(), id, req.StudentName, req.CourseCode, req.Comments, req.Rating)
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while updating feedback")
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback updated successfully")
}

// DeleteFeedback godoc
// @Summary Delete feedback
// @Description Remove a feedback entry and return the deleted row
// @Tags Feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /feedback/{id} [delete]
func (f *FeedbackController) DeleteFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	feedback, err := f.feedbackService.DeleteFeedback(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while deleting feedback")
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback deleted successfully")
}

// ListFeedbackByCourse godoc
// @Summary List feedback for a course
// @Description Get feedback filtered by exact course code, newest first
// @Tags Feedback
// @Produce json
// @Param courseId path string true "Course code"
// @Success 200 {object} utils.APIResponse
// @Router /feedback/course/{courseId} [get]
func (f *FeedbackController) ListFeedbackByCourse(c *gin.Context) {
	courseCode := c.Param("courseId")

	feedbacks, err := f.feedbackService.ListFeedbackByCourse(c.Request.Context(), courseCode)
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while fetching course feedback")
		return
	}

	utils.RespondList(c, feedbacks, len(feedbacks))
}

// ListFeedbackByLecturer godoc
// @Summary List feedback for a lecturer
// @Description Returns all feedback until a lecturer-course relation exists
// @Tags Feedback
// @Produce json
// @Param lecturerId path string true "Lecturer ID"
// @Success 200 {object} utils.APIResponse
// @Router /feedback/lecturer/{lecturerId} [get]
func (f *FeedbackController) ListFeedbackByLecturer(c *gin.Context) {
	// The simplified schema has no lecturer relation; every row qualifies.
	feedbacks, err := f.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while fetching lecturer feedback")
		return
	}

	utils.RespondList(c, feedbacks, len(feedbacks))
}

// GetDashboardStats godoc
// @Summary Dashboard statistics
// @Description Totals and the average rating across all feedback
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /feedback/dashboard/stats [get]
func (f *FeedbackController) GetDashboardStats(c *gin.Context) {
	stats, err := f.feedbackService.DashboardStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while fetching dashboard statistics")
		return
	}

	utils.RespondSuccess(c, stats, "")
}
