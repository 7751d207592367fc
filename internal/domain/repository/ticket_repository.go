package repository

import "github.com/amintouch/ledger-api/internal/domain/entity"

// TicketRepository is the persistence contract for ticket entries.
// Listings are most-recent-first by issue date. Update and Delete return
// domain.ErrNotFound when the id is absent.
type TicketRepository interface {
	Create(t *entity.TicketEntry) error
	GetByID(id string) (*entity.TicketEntry, error)
	Update(t *entity.TicketEntry) error
	Delete(id string) error
	ListByUser(userID string) ([]entity.TicketEntry, error)
	ListAll() ([]entity.TicketEntry, error)
}
