package entity

import (
	"fmt"
	"time"

	"github.com/amintouch/ledger-api/internal/domain"
)

// Trip types for TicketEntry.
const (
	TripOneWay = "1 Way"
	TripReturn = "Return"
)

// Ticket statuses.
const (
	TicketConfirmed = "Confirmed"
	TicketPending   = "Pending"
	TicketCancelled = "Cancelled"
)

// TicketCopy is an optional attached copy of the issued ticket, carried as the
// uploaded file name plus its inline data URL.
type TicketCopy struct {
	FileName string `json:"fileName"`
	DataURL  string `json:"dataUrl"`
}

// TicketEntry is one travel-ticket sale recorded by a staff member.
type TicketEntry struct {
	ID            string
	UserID        string
	UserName      string
	IssueDate     string // DateLayout
	PassengerName string
	PNR           string
	TripType      string // TripOneWay | TripReturn
	Status        string // TicketConfirmed | TicketPending | TicketCancelled
	FlightName    string
	From          string
	To            string
	DepartureDate string // DateLayout
	ArrivalDate   string // DateLayout
	ReturnDate    string // DateLayout, present iff TripType == TripReturn
	FromIssuer    string
	BDNumber      string // optional
	QRNumber      string // optional
	TicketCopy    *TicketCopy
}

// ValidTripType reports whether s is a known trip type.
func ValidTripType(s string) bool {
	return s == TripOneWay || s == TripReturn
}

// ValidTicketStatus reports whether s is a known ticket status.
func ValidTicketStatus(s string) bool {
	return s == TicketConfirmed || s == TicketPending || s == TicketCancelled
}

// Validate checks the ticket invariants.
func (t TicketEntry) Validate() error {
	if t.UserID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if t.PassengerName == "" {
		return fmt.Errorf("%w: passenger name is required", domain.ErrValidation)
	}
	if t.PNR == "" {
		return fmt.Errorf("%w: pnr is required", domain.ErrValidation)
	}
	if !ValidTripType(t.TripType) {
		return fmt.Errorf("%w: unknown trip type %q", domain.ErrValidation, t.TripType)
	}
	if !ValidTicketStatus(t.Status) {
		return fmt.Errorf("%w: unknown ticket status %q", domain.ErrValidation, t.Status)
	}
	if t.FlightName == "" || t.From == "" || t.To == "" {
		return fmt.Errorf("%w: flight, origin and destination are required", domain.ErrValidation)
	}
	if t.FromIssuer == "" {
		return fmt.Errorf("%w: issuing office is required", domain.ErrValidation)
	}
	dates := []struct{ field, value string }{
		{"issue date", t.IssueDate},
		{"departure date", t.DepartureDate},
		{"arrival date", t.ArrivalDate},
	}
	for _, d := range dates {
		if _, err := time.Parse(DateLayout, d.value); err != nil {
			return fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrValidation, d.field)
		}
	}
	if t.TripType == TripReturn {
		if _, err := time.Parse(DateLayout, t.ReturnDate); err != nil {
			return fmt.Errorf("%w: return date must be YYYY-MM-DD for return trips", domain.ErrValidation)
		}
	} else if t.ReturnDate != "" {
		return fmt.Errorf("%w: return date is only valid for return trips", domain.ErrValidation)
	}
	return nil
}
