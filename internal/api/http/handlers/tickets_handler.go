package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/triage-service/internal/api/dto"
	"github.com/campus-kit/triage-service/internal/auth"
	"github.com/campus-kit/triage-service/internal/service"
	apperrors "github.com/campus-kit/triage-service/pkg/util/errorutil"
)

// TicketsHandler manages submitter-facing ticket endpoints.
type TicketsHandler struct {
	lifecycle *service.LifecycleService
	query     *service.QueryService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(lifecycle *service.LifecycleService, query *service.QueryService) *TicketsHandler {
	return &TicketsHandler{lifecycle: lifecycle, query: query}
}

// FileTicket POST /tickets.
func (h *TicketsHandler) FileTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Submitter == nil {
		return apperrors.NewUnauthorized("submitter required")
	}
	var req dto.FileTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.lifecycle.FileTicket(c.UserContext(), *principal.Submitter, req.Description, req.Category)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromTicket(ticket)})
}

// ListOwnTickets GET /tickets. Scoped to the caller's roll number,
// newest first.
func (h *TicketsHandler) ListOwnTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Submitter == nil {
		return apperrors.NewUnauthorized("submitter required")
	}
	tickets, err := h.query.ForSubmitter(c.UserContext(), principal.Submitter.RollNumber)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromTickets(tickets)})
}
