package course_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Jonkomane982/student-feedback-app/internal/api/controllers"
	"github.com/Jonkomane982/student-feedback-app/internal/repositories"
	"github.com/Jonkomane982/student-feedback-app/internal/services"
)

var Module = fx.Provide(
	provideCourseRepo, provideCourseService, provideCourseController,
)

func provideCourseRepo(db *gorm.DB) repositories.CourseRepositoryInterface {
	return repositories.NewCourseRepository(db)
}

func provideCourseService(courseRepo repositories.CourseRepositoryInterface) services.CourseServiceInterface {
	return services.NewCourseService(courseRepo)
}

func provideCourseController(courseService services.CourseServiceInterface) *controllers.CourseController {
	return controllers.NewCourseController(courseService)
}
