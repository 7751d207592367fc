package notify

import (
	"fmt"
	"time"

	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// Mailer delivers the long-form notification mail. Real delivery is an
// external collaborator; LogMailer stands in for it.
type Mailer interface {
	Send(to, subject, body string) error
}

// Dispatcher implements the use cases' notifier ports: it composes the
// messages, publishes the toast event on the relay and hands the mail to the
// mailer. Mail failures are swallowed; the relay publish must never be held
// back by delivery problems.
type Dispatcher struct {
	relay      *Relay
	mailer     Mailer
	adminName  string
	adminEmail string
	now        func() time.Time
}

// NewDispatcher wires the dispatcher. adminName/adminEmail address the mail
// to the administrator the way the dashboard expects.
func NewDispatcher(relay *Relay, mailer Mailer, adminName, adminEmail string) *Dispatcher {
	return &Dispatcher{
		relay:      relay,
		mailer:     mailer,
		adminName:  adminName,
		adminEmail: adminEmail,
		now:        time.Now,
	}
}

// EntryAdded publishes the new-entry event for a cash-flow entry.
func (d *Dispatcher) EntryAdded(e entity.CashFlowEntry) {
	d.relay.Publish(Notification{ID: d.now().UnixMilli(), Message: EntryMessage(e)})
	if d.mailer != nil {
		subject := fmt.Sprintf("New Income/OTP Entry by %s", e.UserName)
		_ = d.mailer.Send(d.adminEmail, subject, EntryMailBody(e, d.adminName))
	}
}

// TicketAdded publishes the new-entry event for a ticket entry.
func (d *Dispatcher) TicketAdded(t entity.TicketEntry) {
	d.relay.Publish(Notification{ID: d.now().UnixMilli(), Message: TicketMessage(t)})
	if d.mailer != nil {
		subject := fmt.Sprintf("New Ticket Entry by %s", t.UserName)
		_ = d.mailer.Send(d.adminEmail, subject, TicketMailBody(t, d.adminName))
	}
}
