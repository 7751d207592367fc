// Package analytics serves the dashboard cards and the financial-overview
// chart on top of the pure aggregation rules in domain/ledger.
package analytics

import (
	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
	"github.com/amintouch/ledger-api/internal/domain/repository"
)

// DashboardUseCase computes filtered summaries and chart series.
type DashboardUseCase struct {
	entries repository.CashFlowRepository
	users   repository.UserRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(entries repository.CashFlowRepository, users repository.UserRepository) *DashboardUseCase {
	return &DashboardUseCase{entries: entries, users: users}
}

// Summary returns the four running totals over the filtered entries, with a
// heading naming the selected staff member when one is chosen.
func (uc *DashboardUseCase) Summary(f ledger.EntryFilter) (*dto.SummaryResponse, error) {
	entries, err := uc.entries.ListAll()
	if err != nil {
		return nil, err
	}

	title := "Overall Summary"
	if f.StaffID != "" && f.StaffID != ledger.FilterAll {
		title = "Summary"
		if u, err := uc.users.GetByID(f.StaffID); err == nil && u != nil {
			title = "Summary for " + u.Name
		}
	}

	return &dto.SummaryResponse{
		Title:   title,
		Summary: ledger.Summarize(ledger.FilterEntries(entries, f)),
	}, nil
}

// Chart buckets the filtered entries at the requested granularity. The
// degrade policy (daily needs a month, monthly needs a year) belongs to the
// caller; this method buckets exactly what it is asked for.
func (uc *DashboardUseCase) Chart(g ledger.Granularity, f ledger.EntryFilter) (*dto.ChartResponse, error) {
	entries, err := uc.entries.ListAll()
	if err != nil {
		return nil, err
	}

	filtered := ledger.FilterEntries(entries, f)
	return &dto.ChartResponse{
		Timeframe: string(g),
		Series:    ledger.Bucketize(filtered, g, f.Year, f.Month),
	}, nil
}
