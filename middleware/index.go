package middleware

import (
	"os"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"travel_manager/utils"
)

// Protected gates every dashboard route behind an operator JWT, taken
// from the httpOnly cookie or an Authorization bearer header. Browser
// requests are redirected to the login page; fragment and API requests
// get a 401 instead so HTMX does not swap in the login markup.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return denied(c, nil)
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return denied(c, err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

func denied(c *fiber.Ctx, err error) error {
	if c.Get("HX-Request") != "" || strings.Contains(c.Get("Accept"), "application/json") {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not signed in", err)
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// WithCloudinary injects the shared storage client into Locals for
// handlers that move files.
func WithCloudinary(cld *cloudinary.Cloudinary) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("cld", cld)
		return c.Next()
	}
}
