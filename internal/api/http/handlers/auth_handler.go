package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/triage-service/internal/api/dto"
	"github.com/campus-kit/triage-service/internal/domain"
	"github.com/campus-kit/triage-service/internal/service"
	apperrors "github.com/campus-kit/triage-service/pkg/util/errorutil"
)

// AuthHandler exposes session endpoints for both roles.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// SubmitterLogin POST /auth/submitter/login.
func (h *AuthHandler) SubmitterLogin(c *fiber.Ctx) error {
	var req dto.SubmitterLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	token, expiresAt, err := h.service.LoginSubmitter(c.UserContext(), req.Submitter())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{
		Token:     token,
		Role:      string(domain.RoleSubmitter),
		ExpiresAt: expiresAt,
	}})
}

// OperatorLogin POST /auth/operator/login.
func (h *AuthHandler) OperatorLogin(c *fiber.Ctx) error {
	var req dto.OperatorLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	token, expiresAt, err := h.service.LoginOperator(c.UserContext(), req.AccessKey)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{
		Token:     token,
		Role:      string(domain.RoleOperator),
		ExpiresAt: expiresAt,
	}})
}
