package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/triage-service/internal/api/dto"
	"github.com/campus-kit/triage-service/internal/service"
	apperrors "github.com/campus-kit/triage-service/pkg/util/errorutil"
)

// OperatorHandler serves the review dashboard.
type OperatorHandler struct {
	lifecycle *service.LifecycleService
	query     *service.QueryService
}

// NewOperatorHandler constructs handler.
func NewOperatorHandler(lifecycle *service.LifecycleService, query *service.QueryService) *OperatorHandler {
	return &OperatorHandler{lifecycle: lifecycle, query: query}
}

// ListTickets GET /operator/tickets?status=&q=. Returns tickets newest
// first, optionally filtered by status and search term.
func (h *OperatorHandler) ListTickets(c *fiber.Ctx) error {
	status := c.Query("status", service.StatusFilterAll)
	term := c.Query("q")

	tickets, err := h.query.Dashboard(c.UserContext(), status, term)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromTickets(tickets)})
}

// GetTicket GET /operator/tickets/:id.
func (h *OperatorHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.query.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromTicket(ticket)})
}

// Stats GET /operator/tickets/stats.
func (h *OperatorHandler) Stats(c *fiber.Ctx) error {
	counts, err := h.query.AggregateCounts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StatsResponse{
		Total:    counts.Total,
		Pending:  counts.Pending,
		Resolved: counts.Resolved,
	}})
}

// Transition POST /operator/tickets/:id/transition.
func (h *OperatorHandler) Transition(c *fiber.Ctx) error {
	var req dto.TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !req.Status.Valid() {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": req.Status})
	}

	ticket, err := h.lifecycle.Transition(c.UserContext(), c.Params("id"), req.Status, req.Remark)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromTicket(ticket)})
}
