package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/service"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// TicketsHandler manages the ticket endpoint group. Admin gating for
// list/update/delete is enforced by the route guards.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Submit POST /ticket/ticketsubmit/submit.
func (h *TicketsHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	ticket, err := h.service.Submit(c.Context(), principal.User.ID, service.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.TicketSubmitResponse{
		Message:  "Ticket submitted successfully",
		TicketID: ticket.ID,
	})
}

// List GET /ticket/ticketsubmit/get.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.TicketResponse, 0, len(tickets))
	for _, row := range tickets {
		items = append(items, dto.NewTicketResponse(row))
	}
	return c.JSON(items)
}

// Update PUT /ticket/ticketsubmit/update/:id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	if _, err := h.service.Update(c.Context(), principal.User.ID, c.Params("id"), service.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Ticket updated successfully"})
}

// Delete DELETE /ticket/ticketsubmit/delete/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.Delete(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Ticket deleted successfully"})
}
