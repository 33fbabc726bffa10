package middleware

import (
	"gyangrit/database"
	"gyangrit/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles returns a middleware that loads the authenticated user and
// rejects the request unless their role is in the allowed set. The loaded
// user is stored in Locals("user") for the handler.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if !user.HasAnyRole(roles...) {
			return JsonResponse(c, fiber.StatusForbidden, false, "Forbidden", nil)
		}

		c.Locals("user", user)
		return c.Next()
	}
}
