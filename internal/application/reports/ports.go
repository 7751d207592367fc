package reports

import (
	"time"

	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// Generator renders the downloadable documents. Implemented by the Maroto
// generator in infrastructure/pdf; the use case only sees bytes.
type Generator interface {
	Invoice(user entity.User, entries []entity.CashFlowEntry, period string) ([]byte, error)
	TicketReport(tickets []entity.TicketEntry, title string, includeStaff bool, generatedOn time.Time) ([]byte, error)
}
