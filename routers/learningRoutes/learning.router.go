package learningRoutes

import (
	learningController "gyangrit/controllers/learning"
	"gyangrit/middleware"
	learningValidator "gyangrit/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningRoutes sets up enrollment and learning path routes
func SetupLearningRoutes(app *fiber.App) {
	group := app.Group("/learning")

	group.Get("/enrollments", middleware.JWTMiddleware, learningController.GetEnrollments)
	group.Post("/enroll", middleware.JWTMiddleware, learningValidator.Enroll(), learningController.EnrollInCourse)
	group.Patch("/enrollments/:id", middleware.JWTMiddleware, learningValidator.EnrollmentID(), learningValidator.UpdateEnrollment(), learningController.UpdateEnrollment)

	group.Get("/paths", middleware.JWTMiddleware, learningController.GetLearningPaths)
	group.Get("/paths/:id", middleware.JWTMiddleware, learningValidator.PathID(), learningController.GetLearningPathDetail)
	group.Get("/paths/:id/progress", middleware.JWTMiddleware, learningValidator.PathID(), learningController.GetLearningPathProgress)

	group.Get("/certificates", middleware.JWTMiddleware, learningController.GetMyCertificates)
}
