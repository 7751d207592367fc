package ledger

import (
	"strings"

	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// FilterAll is the wildcard filter value used by the dashboards. An empty
// string means the same thing.
const FilterAll = "all"

func wildcard(v string) bool {
	return v == "" || v == FilterAll
}

// EntryFilter narrows cash-flow entries the way the admin dashboard does:
// by owning staff member, 4-digit year and 2-digit month.
type EntryFilter struct {
	StaffID string
	Year    string // "YYYY" or all
	Month   string // "01".."12" or all
}

// Match reports whether the entry passes every set filter.
func (f EntryFilter) Match(e entity.CashFlowEntry) bool {
	if !wildcard(f.StaffID) && e.UserID != f.StaffID {
		return false
	}
	if !wildcard(f.Year) && !strings.HasPrefix(e.Date, f.Year) {
		return false
	}
	if !wildcard(f.Month) && (len(e.Date) < 7 || e.Date[5:7] != f.Month) {
		return false
	}
	return true
}

// FilterEntries returns the entries matching f, preserving order.
func FilterEntries(entries []entity.CashFlowEntry, f EntryFilter) []entity.CashFlowEntry {
	out := make([]entity.CashFlowEntry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// TicketFilter narrows ticket entries: staff/year/month like EntryFilter,
// plus ticket status and a case-insensitive passenger-or-PNR search.
type TicketFilter struct {
	StaffID string
	Year    string
	Month   string
	Status  string
	Query   string // matches passenger name or PNR, case-insensitive
}

// Match reports whether the ticket passes every set filter.
func (f TicketFilter) Match(t entity.TicketEntry) bool {
	if !wildcard(f.StaffID) && t.UserID != f.StaffID {
		return false
	}
	if !wildcard(f.Year) && !strings.HasPrefix(t.IssueDate, f.Year) {
		return false
	}
	if !wildcard(f.Month) && (len(t.IssueDate) < 7 || t.IssueDate[5:7] != f.Month) {
		return false
	}
	if !wildcard(f.Status) && t.Status != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(t.PassengerName), q) &&
			!strings.Contains(strings.ToLower(t.PNR), q) {
			return false
		}
	}
	return true
}

// FilterTickets returns the tickets matching f, preserving order.
func FilterTickets(tickets []entity.TicketEntry, f TicketFilter) []entity.TicketEntry {
	out := make([]entity.TicketEntry, 0, len(tickets))
	for _, t := range tickets {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
