package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jonkomane982/student-feedback-app/internal/services"
	"github.com/Jonkomane982/student-feedback-app/pkg/utils"
)

type CourseController struct {
	courseService services.CourseServiceInterface
}

func NewCourseController(courseService services.CourseServiceInterface) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses godoc
// @Summary List all courses
// @Tags Courses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /courses [get]
func (cc *CourseController) ListCourses(c *gin.Context) {
	courses, err := cc.courseService.ListCourses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while fetching courses")
		return
	}

	utils.RespondList(c, courses, len(courses))
}

// GetCourse godoc
// @Summary Get course by ID
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /courses/{id} [get]
func (cc *CourseController) GetCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid course ID")
		return
	}

	course, err := cc.courseService.GetCourse(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Server error while fetching course")
		return
	}

	utils.RespondSuccess(c, course, "")
}

// ListCoursesByLecturer godoc
// @Summary List courses by lecturer
// @Description Placeholder: lecturer-course relations are not modelled yet
// @Tags Courses
// @Produce json
// @Param lecturerId path string true "Lecturer ID"
// @Failure 501 {object} utils.APIResponse
// @Router /courses/lecturer/{lecturerId} [get]
func (cc *CourseController) ListCoursesByLecturer(c *gin.Context) {
	utils.RespondNotImplemented(c, "Courses by lecturer endpoint not implemented")
}
