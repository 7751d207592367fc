package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/amintouch/ledger-api/internal/application/cashflow"
	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
)

// EntryHandler handles cash-flow entry requests (protected).
type EntryHandler struct {
	uc *cashflow.UseCase
}

// NewEntryHandler builds the handler.
func NewEntryHandler(uc *cashflow.UseCase) *EntryHandler {
	return &EntryHandler{uc: uc}
}

// Create records a new entry owned by the caller.
// POST /api/entries
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Add(GetUserID(c), in)
	if err != nil {
		return entryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update replaces an entry the caller owns.
// PUT /api/entries/:id
func (h *EntryHandler) Update(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return entryError(c, err)
	}
	return c.JSON(out)
}

// Delete removes an entry the caller owns.
// DELETE /api/entries/:id
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return entryError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Entry deleted"})
}

// List returns entries most recent first. Staff see their own records only;
// admins see every record, optionally narrowed by staffId, year and month.
// GET /api/entries
func (h *EntryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination parameters"})
	}

	var (
		out *dto.EntryListResponse
		err error
	)
	if GetRole(c) == entity.RoleAdmin {
		out, err = h.uc.ListAll(ledger.EntryFilter{
			StaffID: c.Query("staffId", ledger.FilterAll),
			Year:    c.Query("year", ledger.FilterAll),
			Month:   c.Query("month", ledger.FilterAll),
		}, page)
	} else {
		out, err = h.uc.ListByUser(GetUserID(c), page)
	}
	if err != nil {
		return entryError(c, err)
	}
	return c.JSON(out)
}

func entryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entry not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "user not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "only the owner may modify this entry"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
