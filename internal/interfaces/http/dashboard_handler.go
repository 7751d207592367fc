package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amintouch/ledger-api/internal/application/analytics"
	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
)

// DashboardHandler serves the summary cards and the financial-overview chart
// (protected).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// entryFilter reads staffId/year/month, pinning staff callers to their own
// records.
func entryFilter(c *fiber.Ctx) ledger.EntryFilter {
	f := ledger.EntryFilter{
		Year:  c.Query("year", ledger.FilterAll),
		Month: c.Query("month", ledger.FilterAll),
	}
	if GetRole(c) == entity.RoleAdmin {
		f.StaffID = c.Query("staffId", ledger.FilterAll)
	} else {
		f.StaffID = GetUserID(c)
	}
	return f
}

// Summary returns the four running totals for the filtered period.
// GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(entryFilter(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Chart returns the bucketed income/OTP series. The requested timeframe
// degrades when the filter cannot support it: daily needs a specific month
// and year, monthly needs a specific year, otherwise the series is yearly.
// The response echoes the timeframe actually used.
// GET /api/dashboard/chart
func (h *DashboardHandler) Chart(c *fiber.Ctx) error {
	tf := c.Query("timeframe", string(ledger.Monthly))
	if !ledger.ValidGranularity(tf) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "timeframe must be daily, monthly or yearly"})
	}

	f := entryFilter(c)
	g := degrade(ledger.Granularity(tf), f)

	out, err := h.uc.Chart(g, f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// degrade coarsens the granularity until the filter supports it.
func degrade(g ledger.Granularity, f ledger.EntryFilter) ledger.Granularity {
	wild := func(v string) bool { return v == "" || v == ledger.FilterAll }
	if g == ledger.Daily && (wild(f.Month) || wild(f.Year)) {
		g = ledger.Monthly
	}
	if g == ledger.Monthly && wild(f.Year) {
		g = ledger.Yearly
	}
	return g
}
