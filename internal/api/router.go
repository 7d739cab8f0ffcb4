package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jonkomane982/student-feedback-app/internal/api/controllers"
	"github.com/Jonkomane982/student-feedback-app/pkg/middleware"
	"github.com/Jonkomane982/student-feedback-app/pkg/utils"
)

func ProvideRouter(
	feedbackController *controllers.FeedbackController,
	courseController *controllers.CourseController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, feedbackController, courseController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	feedbackController *controllers.FeedbackController,
	courseController *controllers.CourseController,
	authController *controllers.AuthController) {

	apiGroup := r.Group("/api")

	apiGroup.GET("/health", HealthCheck)

	feedbackGroup := apiGroup.Group("/feedback")
	feedbackGroup.GET("", feedbackController.ListFeedback)
	// Literal paths go in before the :id pattern so it cannot swallow them.
	feedbackGroup.GET("/dashboard/stats", feedbackController.GetDashboardStats)
	feedbackGroup.GET("/course/:courseId", feedbackController.ListFeedbackByCourse)
	feedbackGroup.GET("/lecturer/:lecturerId", feedbackController.ListFeedbackByLecturer)
	feedbackGroup.GET("/:id", feedbackController.GetFeedback)
	feedbackGroup.POST("", feedbackController.CreateFeedback)
	feedbackGroup.PUT("/:id", feedbackController.UpdateFeedback)
	feedbackGroup.DELETE("/:id", feedbackController.DeleteFeedback)

	courseGroup := apiGroup.Group("/courses")
	courseGroup.GET("", courseController.ListCourses)
	courseGroup.GET("/lecturer/:lecturerId", courseController.ListCoursesByLecturer)
	courseGroup.GET("/:id", courseController.GetCourse)

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/me", authController.GetMe)

	// Single-page frontend.
	r.StaticFile("/", "./web/static/index.html")
	r.Static("/static", "./web/static")

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.APIResponse{
			Success: false,
			Message: "Route not found",
		})
	})
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports whether the API process is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Student Feedback API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
