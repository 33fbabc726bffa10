package analyticsRoutes

import (
	analyticsController "gyangrit/controllers/analytics"
	"gyangrit/middleware"
	"gyangrit/models"
	analyticsValidator "gyangrit/validators/analytics"

	"github.com/gofiber/fiber/v2"
)

// SetupAnalyticsRoutes sets up the teacher analytics routes. Access requires
// the TEACHER, OFFICIAL or ADMIN role; scoping is applied per handler.
func SetupAnalyticsRoutes(app *fiber.App) {
	group := app.Group("/teacher/analytics",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleTeacher, models.RoleOfficial, models.RoleAdmin),
	)

	group.Get("/courses", analyticsController.GetCourseAnalytics)
	group.Get("/lessons", analyticsController.GetLessonAnalytics)
	group.Get("/assessments", analyticsController.GetAssessmentAnalytics)
	group.Get("/classes", analyticsController.GetClassAnalytics)
	group.Get("/classes/:id/students", analyticsValidator.ClassID(), analyticsController.GetClassStudentAnalytics)
}
