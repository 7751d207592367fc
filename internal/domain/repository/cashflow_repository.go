package repository

import "github.com/amintouch/ledger-api/internal/domain/entity"

// CashFlowRepository is the persistence contract for cash-flow entries.
// Listings are most-recent-first by (date, time). Update and Delete return
// domain.ErrNotFound when the id is absent; every mutation is a whole-record
// replace, never a partial write.
type CashFlowRepository interface {
	Create(e *entity.CashFlowEntry) error
	GetByID(id string) (*entity.CashFlowEntry, error)
	Update(e *entity.CashFlowEntry) error
	Delete(id string) error
	ListByUser(userID string) ([]entity.CashFlowEntry, error)
	ListAll() ([]entity.CashFlowEntry, error)
}
