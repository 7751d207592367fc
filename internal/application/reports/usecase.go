// Package reports assembles the invoice and ticket-report downloads: it
// resolves the staff member, filters the record set, picks the document
// labels and hands everything to the PDF generator.
package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
	"github.com/amintouch/ledger-api/internal/domain/repository"
)

// UseCase builds the PDF downloads.
type UseCase struct {
	entries repository.CashFlowRepository
	tickets repository.TicketRepository
	users   repository.UserRepository
	gen     Generator
	now     func() time.Time
}

// NewUseCase builds the use case.
func NewUseCase(
	entries repository.CashFlowRepository,
	tickets repository.TicketRepository,
	users repository.UserRepository,
	gen Generator,
) *UseCase {
	return &UseCase{entries: entries, tickets: tickets, users: users, gen: gen, now: time.Now}
}

// WithClock overrides the time source for the "generated on" stamp.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Invoice renders the income invoice for one staff member over one specific
// month. A concrete staff member, year and month are required; "all" is not a
// valid invoice scope.
func (uc *UseCase) Invoice(staffID, year, month string) (pdf []byte, filename string, err error) {
	if isWildcard(staffID) || isWildcard(year) || isWildcard(month) {
		return nil, "", fmt.Errorf("%w: a specific staff, month and year are required for an invoice", domain.ErrValidation)
	}

	user, err := uc.users.GetByID(staffID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}

	monthName, err := monthLabel(month)
	if err != nil {
		return nil, "", err
	}
	period := monthName + " " + year

	all, err := uc.entries.ListAll()
	if err != nil {
		return nil, "", err
	}
	filtered := ledger.FilterEntries(all, ledger.EntryFilter{StaffID: staffID, Year: year, Month: month})

	pdf, err = uc.gen.Invoice(*user, filtered, period)
	if err != nil {
		return nil, "", err
	}

	filename = fmt.Sprintf("Invoice_%s_%s_%s.pdf",
		strings.ReplaceAll(user.Name, " ", "_"), monthName, year)
	return pdf, filename, nil
}

// TicketReport renders the ticket table for the given filter. includeStaff
// adds the staff column (admin-originated reports).
func (uc *UseCase) TicketReport(f ledger.TicketFilter, includeStaff bool) (pdf []byte, filename string, err error) {
	all, err := uc.tickets.ListAll()
	if err != nil {
		return nil, "", err
	}
	filtered := ledger.FilterTickets(all, f)
	if len(filtered) == 0 {
		return nil, "", fmt.Errorf("%w: no ticket entries match the selected filters", domain.ErrNotFound)
	}

	title, err := uc.ticketReportTitle(f)
	if err != nil {
		return nil, "", err
	}

	pdf, err = uc.gen.TicketReport(filtered, title, includeStaff, uc.now())
	if err != nil {
		return nil, "", err
	}
	return pdf, sanitizeFilename(title) + ".pdf", nil
}

func (uc *UseCase) ticketReportTitle(f ledger.TicketFilter) (string, error) {
	staffName := "All Staff"
	if !isWildcard(f.StaffID) {
		u, err := uc.users.GetByID(f.StaffID)
		if err != nil {
			return "", err
		}
		if u == nil {
			return "", domain.ErrUserNotFound
		}
		staffName = u.Name
	}

	monthName := "All Months"
	if !isWildcard(f.Month) {
		m, err := monthLabel(f.Month)
		if err != nil {
			return "", err
		}
		monthName = m
	}

	year := "All Years"
	if !isWildcard(f.Year) {
		year = f.Year
	}

	return fmt.Sprintf("Ticket Report: %s - %s %s", staffName, monthName, year), nil
}

func isWildcard(v string) bool {
	return v == "" || v == ledger.FilterAll
}

// monthLabel turns "01".."12" into the English month name.
func monthLabel(month string) (string, error) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", fmt.Errorf("%w: month must be 01-12", domain.ErrValidation)
	}
	return time.Month(m).String(), nil
}

// sanitizeFilename lowercases and replaces everything outside [a-z0-9].
func sanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
