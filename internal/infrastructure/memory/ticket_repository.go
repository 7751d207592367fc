package memory

import (
	"sort"
	"sync"

	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// TicketRepository keeps ticket entries in a mutex-guarded slice.
type TicketRepository struct {
	mu      sync.RWMutex
	tickets []entity.TicketEntry
}

// NewTicketRepository builds an empty repository.
func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

// Create stores a copy of the ticket. The caller has already assigned the id.
func (r *TicketRepository) Create(t *entity.TicketEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets = append(r.tickets, *t)
	return nil
}

// GetByID returns a copy of the ticket, or (nil, nil) when absent.
func (r *TicketRepository) GetByID(id string) (*entity.TicketEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tickets {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, nil
}

// Update replaces the stored ticket wholesale.
func (r *TicketRepository) Update(t *entity.TicketEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tickets {
		if r.tickets[i].ID == t.ID {
			r.tickets[i] = *t
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete removes the ticket by id.
func (r *TicketRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ListByUser returns the user's tickets, most recent issue date first.
func (r *TicketRepository) ListByUser(userID string) ([]entity.TicketEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.TicketEntry, 0, len(r.tickets))
	for _, t := range r.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sortTickets(out)
	return out, nil
}

// ListAll returns every ticket, most recent issue date first.
func (r *TicketRepository) ListAll() ([]entity.TicketEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]entity.TicketEntry(nil), r.tickets...)
	sortTickets(out)
	return out, nil
}

func sortTickets(tickets []entity.TicketEntry) {
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].IssueDate > tickets[j].IssueDate
	})
}
