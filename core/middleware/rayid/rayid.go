// Package rayid assigns a unique ray ID to every incoming request.
//
// The ID is stored in the request locals under "ray_id" and echoed back in the
// X-Ray-Id response header so a failing webhook delivery can be correlated
// with the server logs.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the ray ID.
const HeaderName = "X-Ray-Id"

// New creates the ray ID middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Honor an inbound ray ID so upstream proxies can trace through us.
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
