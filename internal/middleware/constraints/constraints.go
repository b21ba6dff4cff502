package constraints

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
)

// RequireUUID is a Fiber middleware that ensures a path parameter is a valid
// UUID. A non-UUID value returns 404 so the route behaves as if it doesn't
// match; static routes must be registered before parameterized ones for
// correct precedence.
func RequireUUID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		paramValue := c.Params(param)
		if paramValue == "" {
			return c.Next()
		}
		if _, err := uuid.FromString(paramValue); err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Next()
	}
}
