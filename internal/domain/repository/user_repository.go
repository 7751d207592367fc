package repository

import "github.com/amintouch/ledger-api/internal/domain/entity"

// UserRepository is the persistence contract for users. The seeded user table
// never grows or shrinks at runtime; only password hashes change.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	// FindByUsername matches case-insensitively; returns (nil, nil) on miss.
	FindByUsername(username string) (*entity.User, error)
	ListByRole(role string) ([]entity.User, error)
	UpdatePassword(id, passwordHash string) error
}
