package memory

import (
	"sort"
	"sync"

	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// CashFlowRepository keeps cash-flow entries in a mutex-guarded slice.
type CashFlowRepository struct {
	mu      sync.RWMutex
	entries []entity.CashFlowEntry
}

// NewCashFlowRepository builds an empty repository.
func NewCashFlowRepository() *CashFlowRepository {
	return &CashFlowRepository{}
}

// Create stores a copy of the entry. The caller has already assigned the id.
func (r *CashFlowRepository) Create(e *entity.CashFlowEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

// GetByID returns a copy of the entry, or (nil, nil) when absent.
func (r *CashFlowRepository) GetByID(id string) (*entity.CashFlowEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

// Update replaces the stored entry wholesale.
func (r *CashFlowRepository) Update(e *entity.CashFlowEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == e.ID {
			r.entries[i] = *e
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete removes the entry by id.
func (r *CashFlowRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ListByUser returns the user's entries, most recent first.
func (r *CashFlowRepository) ListByUser(userID string) ([]entity.CashFlowEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.CashFlowEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sortEntries(out)
	return out, nil
}

// ListAll returns every entry, most recent first.
func (r *CashFlowRepository) ListAll() ([]entity.CashFlowEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]entity.CashFlowEntry(nil), r.entries...)
	sortEntries(out)
	return out, nil
}

// sortEntries orders most-recent-first by (date, time). Both fields use
// zero-padded layouts, so lexicographic comparison is chronological.
func sortEntries(entries []entity.CashFlowEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].Time > entries[j].Time
	})
}
