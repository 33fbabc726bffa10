package analyticsValidator

import (
	"strconv"
	"strings"

	"gyangrit/middleware"

	"github.com/gofiber/fiber/v2"
)

// ClassID validates the :id classroom route parameter
func ClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}
		c.Locals("classID", id)
		return c.Next()
	}
}
