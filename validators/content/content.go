package contentValidator

import (
	"strconv"
	"strings"

	"gyangrit/middleware"

	"github.com/gofiber/fiber/v2"
)

// paramID parses a positive integer route parameter
func paramID(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CourseID validates the :id course route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// LessonID validates the :id lesson route parameter
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}
		c.Locals("lessonID", id)
		return c.Next()
	}
}

// UpdateLessonProgress validates the partial progress update body
func UpdateLessonProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Completed        *bool `json:"completed"`
			LastPosition     *int  `json:"last_position"`
			TimeSpentSeconds *int  `json:"time_spent_seconds"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LastPosition != nil && *reqData.LastPosition < 0 {
			errors["last_position"] = "Last position must not be negative!"
		}
		if reqData.TimeSpentSeconds != nil && *reqData.TimeSpentSeconds < 0 {
			errors["time_spent_seconds"] = "Time spent must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgressUpdate", reqData)
		return c.Next()
	}
}
