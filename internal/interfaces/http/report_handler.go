package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/application/reports"
	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
)

// ReportHandler serves the PDF downloads (protected).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Invoice renders the monthly income invoice for one staff member. Staff can
// only invoice themselves; admins pick any staff via staffId.
// GET /api/reports/invoice?staffId=&year=&month=
func (h *ReportHandler) Invoice(c *fiber.Ctx) error {
	staffID := GetUserID(c)
	if GetRole(c) == entity.RoleAdmin {
		staffID = c.Query("staffId")
	}

	pdf, filename, err := h.uc.Invoice(staffID, c.Query("year"), c.Query("month"))
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// Tickets renders the ticket report for the selected filters. Staff are
// pinned to their own tickets; the staff column only appears on admin
// reports.
// GET /api/reports/tickets?staffId=&year=&month=&status=&q=
func (h *ReportHandler) Tickets(c *fiber.Ctx) error {
	f := ledger.TicketFilter{
		Year:   c.Query("year", ledger.FilterAll),
		Month:  c.Query("month", ledger.FilterAll),
		Status: c.Query("status", ledger.FilterAll),
		Query:  c.Query("q"),
	}
	isAdmin := GetRole(c) == entity.RoleAdmin
	if isAdmin {
		f.StaffID = c.Query("staffId", ledger.FilterAll)
	} else {
		f.StaffID = GetUserID(c)
	}

	pdf, filename, err := h.uc.TicketReport(f, isAdmin)
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "staff member not found"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
