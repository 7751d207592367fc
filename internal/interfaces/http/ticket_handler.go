package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/application/ticketing"
	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
)

// TicketHandler handles ticket entry requests (protected).
type TicketHandler struct {
	uc *ticketing.UseCase
}

// NewTicketHandler builds the handler.
func NewTicketHandler(uc *ticketing.UseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create records a new ticket sale owned by the caller.
// POST /api/tickets
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.TicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Add(GetUserID(c), in)
	if err != nil {
		return ticketError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update replaces a ticket the caller owns.
// PUT /api/tickets/:id
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	var in dto.TicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return ticketError(c, err)
	}
	return c.JSON(out)
}

// Delete removes a ticket the caller owns.
// DELETE /api/tickets/:id
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return ticketError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Ticket deleted"})
}

// List returns tickets most recent issue date first. Staff see their own
// records; admins see every record, narrowed by staffId, year, month, status
// and the q passenger/PNR search.
// GET /api/tickets
func (h *TicketHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination parameters"})
	}

	f := ledger.TicketFilter{
		Year:   c.Query("year", ledger.FilterAll),
		Month:  c.Query("month", ledger.FilterAll),
		Status: c.Query("status", ledger.FilterAll),
		Query:  c.Query("q"),
	}
	if GetRole(c) == entity.RoleAdmin {
		f.StaffID = c.Query("staffId", ledger.FilterAll)
	} else {
		// Staff are pinned to their own records regardless of the query.
		f.StaffID = GetUserID(c)
	}

	out, err := h.uc.ListAll(f, page)
	if err != nil {
		return ticketError(c, err)
	}
	return c.JSON(out)
}

func ticketError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ticket not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "user not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "only the owner may modify this ticket"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
