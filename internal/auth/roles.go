package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/triage-service/internal/domain"
)

// RequireSubmitter ensures a submitter is authenticated.
func RequireSubmitter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != domain.RoleSubmitter || principal.Submitter == nil {
			return fiber.NewError(http.StatusForbidden, "submitter required")
		}
		return c.Next()
	}
}

// RequireOperator ensures the caller holds the operator role.
func RequireOperator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != domain.RoleOperator {
			return fiber.NewError(http.StatusForbidden, "operator required")
		}
		return c.Next()
	}
}
