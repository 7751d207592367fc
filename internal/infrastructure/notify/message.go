package notify

import (
	"fmt"
	"strings"

	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// EntryMessage is the one-line toast summary for a new cash-flow entry.
func EntryMessage(e entity.CashFlowEntry) string {
	return fmt.Sprintf("New Income/OTP entry from %s: %s - %s %s",
		e.UserName, e.Type, e.Amount.StringFixed(2), currencyLabel)
}

// TicketMessage is the one-line toast summary for a new ticket entry.
func TicketMessage(t entity.TicketEntry) string {
	return fmt.Sprintf("New Ticket entry from %s for %s (PNR: %s)",
		t.UserName, t.PassengerName, t.PNR)
}

// currencyLabel on the toast line matches the dashboard cards.
const currencyLabel = "QR"

// EntryMailBody renders the long-form mail body for a cash-flow entry.
func EntryMailBody(e entity.CashFlowEntry, adminName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", adminName)
	fmt.Fprintf(&b, "A new entry has been added by staff member %s.\n\n", e.UserName)
	b.WriteString("Details:\n")
	fmt.Fprintf(&b, "- Date: %s\n", e.Date)
	fmt.Fprintf(&b, "- Time: %s\n", e.Time)
	fmt.Fprintf(&b, "- Type: %s\n", e.Type)
	fmt.Fprintf(&b, "- Amount: %s %s\n", e.Amount.StringFixed(2), currencyLabel)
	fmt.Fprintf(&b, "- Description: %s\n", e.Description)
	if entity.IsPaymentType(e.Type) && e.Recipient != "" {
		fmt.Fprintf(&b, "- Recipient: %s\n", e.Recipient)
	}
	b.WriteString("\nPlease review this entry in the Admin Dashboard.\n")
	return b.String()
}

// TicketMailBody renders the long-form mail body for a ticket entry.
func TicketMailBody(t entity.TicketEntry, adminName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", adminName)
	fmt.Fprintf(&b, "A new ticket entry has been added by staff member %s.\n\n", t.UserName)
	b.WriteString("Details:\n")
	fmt.Fprintf(&b, "- Issue Date: %s\n", t.IssueDate)
	fmt.Fprintf(&b, "- Passenger: %s\n", t.PassengerName)
	fmt.Fprintf(&b, "- PNR: %s\n", t.PNR)
	fmt.Fprintf(&b, "- Route: %s -> %s\n", t.From, t.To)
	fmt.Fprintf(&b, "- Airline: %s\n", t.FlightName)
	b.WriteString("\nPlease review this entry in the Admin Dashboard.\n")
	return b.String()
}
