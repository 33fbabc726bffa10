package learningValidator

import (
	"strconv"
	"strings"

	"gyangrit/middleware"
	"gyangrit/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func paramID(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Enroll validates the enrollment body
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"course_id" validate:"required,gt=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "Course ID is required!",
			})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// EnrollmentID validates the :id enrollment route parameter
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}
		c.Locals("enrollmentID", id)
		return c.Next()
	}
}

// UpdateEnrollment validates the status trigger body
func UpdateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))
		if reqData.Status != models.EnrollmentCompleted && reqData.Status != models.EnrollmentDropped {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be COMPLETED or DROPPED!",
			})
		}

		c.Locals("validatedEnrollmentUpdate", reqData)
		return c.Next()
	}
}

// PathID validates the :id learning path route parameter
func PathID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Learning Path ID!", nil)
		}
		c.Locals("pathID", id)
		return c.Next()
	}
}
