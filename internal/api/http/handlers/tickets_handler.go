package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tiered-support/support-desk/internal/api/dto"
	"github.com/tiered-support/support-desk/internal/service"
	apperrors "github.com/tiered-support/support-desk/pkg/util"
)

// TicketsHandler serves the ticket intake endpoint.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /api/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(service.MsgMissingFields, nil)
	}

	result, err := h.service.Submit(c.UserContext(), service.TicketSubmission{
		Tier:    req.Tier,
		Email:   req.Email,
		Subject: req.Subject,
		Details: req.Details,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.CreateTicketResponse{
		OK:       true,
		TicketID: result.Ticket.ID,
		Emailed:  result.Emailed,
	})
}
