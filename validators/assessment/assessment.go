package assessmentValidator

import (
	"strconv"
	"strings"

	"gyangrit/middleware"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CourseID validates the :course_id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// AssessmentID validates the :id assessment route parameter
func AssessmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Assessment ID!", nil)
		}
		c.Locals("assessmentID", id)
		return c.Next()
	}
}

// Submit validates the submit body; answers may be empty but must be present
// as an object
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AttemptID uint            `json:"attempt_id"`
			Answers   map[string]uint `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AttemptID == 0 {
			errors["attempt_id"] = "Attempt ID is required!"
		}
		if reqData.Answers == nil {
			errors["answers"] = "Answers object is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmit", reqData)
		return c.Next()
	}
}
