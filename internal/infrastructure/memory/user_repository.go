// Package memory implements the repository contracts on process-local
// collections. All entry data is volatile and lost on restart; persistence is
// a seam the repository interfaces leave open.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// UserRepository is a mutex-guarded in-memory user table.
type UserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewUserRepository builds the repository from an initial user set.
func NewUserRepository(users []entity.User) *UserRepository {
	return &UserRepository{users: append([]entity.User(nil), users...)}
}

// GetByID returns a copy of the user, or (nil, nil) when absent.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

// FindByUsername matches case-insensitively; returns (nil, nil) on miss.
func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(username)
	for _, u := range r.users {
		if strings.ToLower(u.Username) == needle {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

// ListByRole returns users with the given role, sorted by display name.
func (r *UserRepository) ListByRole(role string) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// UpdatePassword overwrites the stored hash for the user.
func (r *UserRepository) UpdatePassword(id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].PasswordHash = passwordHash
			return nil
		}
	}
	return domain.ErrUserNotFound
}
