package authValidator

import (
	"strings"

	"gyangrit/middleware"
	"gyangrit/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username" validate:"required,min=3"`
			Password string `json:"password" validate:"required,min=8"`
			Name     string `json:"name"`
			Email    string `json:"email" validate:"omitempty,email"`
			Role     string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Username":
					errors["username"] = "Username must be at least 3 characters long!"
				case "Password":
					errors["password"] = "Password must be at least 8 characters long!"
				case "Email":
					errors["email"] = "Invalid email!"
				}
			}
		}

		// Role defaults to STUDENT; self-registration never grants elevated roles
		if reqData.Role != "" {
			role := strings.ToUpper(strings.TrimSpace(reqData.Role))
			if role != models.RoleStudent && role != models.RoleTeacher {
				errors["role"] = "Role must be STUDENT or TEACHER!"
			} else {
				reqData.Role = role
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Username) == "" {
			errors["username"] = "Username is required!"
		}
		if strings.TrimSpace(reqData.Password) == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
