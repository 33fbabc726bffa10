package assessmentRoutes

import (
	assessmentController "gyangrit/controllers/assessment"
	"gyangrit/middleware"
	assessmentValidator "gyangrit/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

// SetupAssessmentRoutes sets up assessment and attempt routes
func SetupAssessmentRoutes(app *fiber.App) {
	group := app.Group("/assessments")

	group.Get("/course/:course_id", middleware.JWTMiddleware, assessmentValidator.CourseID(), assessmentController.GetCourseAssessments)
	group.Get("/:id", middleware.JWTMiddleware, assessmentValidator.AssessmentID(), assessmentController.GetAssessmentDetail)
	group.Post("/:id/start", middleware.JWTMiddleware, assessmentValidator.AssessmentID(), assessmentController.StartAssessment)
	group.Post("/:id/submit", middleware.JWTMiddleware, assessmentValidator.AssessmentID(), assessmentValidator.Submit(), assessmentController.SubmitAssessment)
	group.Get("/:id/my-attempts", middleware.JWTMiddleware, assessmentValidator.AssessmentID(), assessmentController.GetMyAttempts)
}
