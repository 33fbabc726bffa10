package contentRoutes

import (
	contentController "gyangrit/controllers/content"
	"gyangrit/middleware"
	contentValidator "gyangrit/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up course and lesson routes
func SetupContentRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", middleware.JWTMiddleware, contentController.GetCourses)
	courseGroup.Get("/:id/lessons", middleware.JWTMiddleware, contentValidator.CourseID(), contentController.GetCourseLessons)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, contentValidator.CourseID(), contentController.GetCourseProgress)

	lessonGroup := app.Group("/lessons")

	// Fetching a lesson records the open
	lessonGroup.Get("/:id", middleware.JWTMiddleware, contentValidator.LessonID(), contentController.GetLessonDetail)
	lessonGroup.Get("/:id/progress", middleware.JWTMiddleware, contentValidator.LessonID(), contentController.GetLessonProgress)
	lessonGroup.Patch("/:id/progress", middleware.JWTMiddleware, contentValidator.LessonID(), contentValidator.UpdateLessonProgress(), contentController.UpdateLessonProgress)
}
