package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sogrinha/internal/bridge"
)

// SubjectLocalKey holds the verified token subject in Fiber's context locals.
const SubjectLocalKey = "bridge_subject"

// BridgeAuth requires a bearer token signed with secret. The token subject is bound to the
// request context so the bridge can scope attachment calls to it.
// An empty secret rejects every request.
func BridgeAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" || len(secret) == 0 {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		sub, err := bridge.ParseToken(secret, token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid bearer token")
		}

		c.Locals(SubjectLocalKey, sub)
		c.SetUserContext(bridge.WithSubject(c.UserContext(), sub))
		return c.Next()
	}
}
