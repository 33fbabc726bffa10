package adminRoutes

import (
	adminController "gyangrit/controllers/admin"
	"gyangrit/middleware"
	"gyangrit/models"
	adminValidator "gyangrit/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin content management routes
func SetupAdminRoutes(app *fiber.App) {
	courseGroup := app.Group("/admin/courses",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleAdmin),
	)

	// Course CRUD
	courseGroup.Post("/", adminValidator.Course(), adminController.CreateCourse)
	courseGroup.Put("/:id", adminValidator.CourseID(), adminValidator.Course(), adminController.UpdateCourse)
	courseGroup.Delete("/:id", adminValidator.CourseID(), adminController.DeleteCourse)
	courseGroup.Post("/:id/publish", adminValidator.CourseID(), adminController.PublishCourse)

	// Lesson management
	courseGroup.Post("/:id/lessons", adminValidator.CourseID(), adminValidator.Lesson(), adminController.CreateLesson)
	courseGroup.Put("/:course_id/lessons/:lesson_id", adminValidator.CourseLessonIDs(), adminValidator.Lesson(), adminController.UpdateLesson)
	courseGroup.Delete("/:course_id/lessons/:lesson_id", adminValidator.CourseLessonIDs(), adminController.DeleteLesson)

	// Assessment management
	courseGroup.Post("/:id/assessments", adminValidator.CourseID(), adminValidator.Assessment(), adminController.CreateAssessment)

	assessmentGroup := app.Group("/admin/assessments",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleAdmin),
	)
	assessmentGroup.Post("/:id/publish", adminValidator.AssessmentID(), adminController.PublishAssessment)
	assessmentGroup.Delete("/:id", adminValidator.AssessmentID(), adminController.DeleteAssessment)

	// Institutions, classes and curricula
	orgGroup := app.Group("/admin",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleAdmin),
	)
	orgGroup.Post("/institutions", adminValidator.Institution(), adminController.CreateInstitution)
	orgGroup.Post("/classes", adminValidator.ClassRoom(), adminController.CreateClassRoom)
	orgGroup.Post("/classes/assign-teacher", adminValidator.AssignTeacher(), adminController.AssignTeacher)
	orgGroup.Post("/learning-paths", adminValidator.LearningPath(), adminController.CreateLearningPath)
}
