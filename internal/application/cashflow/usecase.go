// Package cashflow holds the use cases around daily income/OTP entries:
// create, replace, delete and the role-scoped listings.
package cashflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
	"github.com/amintouch/ledger-api/internal/domain/repository"
)

// Notifier is the minimal contract toward the notification relay. Keeping it
// here avoids coupling the use case to the relay implementation.
type Notifier interface {
	EntryAdded(entity.CashFlowEntry)
}

// UseCase cash-flow entry CRUD with ownership enforcement.
type UseCase struct {
	entries  repository.CashFlowRepository
	users    repository.UserRepository
	notifier Notifier
	now      func() time.Time
}

// NewUseCase builds the use case. notifier may be nil (no relay mounted).
func NewUseCase(entries repository.CashFlowRepository, users repository.UserRepository, notifier Notifier) *UseCase {
	return &UseCase{entries: entries, users: users, notifier: notifier, now: time.Now}
}

// WithClock overrides the time source; tests use it to pin the captured
// time-of-day.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Add validates and stores a new entry owned by userID, then fires the
// new-entry notification.
func (uc *UseCase) Add(userID string, in dto.EntryRequest) (*dto.EntryResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	e := entity.CashFlowEntry{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		UserName:    user.Name,
		Date:        in.Date,
		Time:        uc.now().Format(entity.TimeLayout),
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Recipient:   in.Recipient,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := uc.entries.Create(&e); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.EntryAdded(e)
	}

	out := dto.ToEntryResponse(e)
	return &out, nil
}

// Update replaces the entry's mutable fields. Only the owning staff member
// may update; the captured time-of-day is preserved.
func (uc *UseCase) Update(actorID, entryID string, in dto.EntryRequest) (*dto.EntryResponse, error) {
	existing, err := uc.entries.GetByID(entryID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if existing.UserID != actorID {
		return nil, domain.ErrForbidden
	}

	updated := *existing
	updated.Date = in.Date
	updated.Type = in.Type
	updated.Amount = in.Amount
	updated.Description = in.Description
	updated.Recipient = in.Recipient
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := uc.entries.Update(&updated); err != nil {
		return nil, err
	}

	out := dto.ToEntryResponse(updated)
	return &out, nil
}

// Delete removes the entry. Only the owning staff member may delete.
func (uc *UseCase) Delete(actorID, entryID string) error {
	existing, err := uc.entries.GetByID(entryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if existing.UserID != actorID {
		return domain.ErrForbidden
	}
	return uc.entries.Delete(entryID)
}

// ListByUser returns a page of the user's entries, most recent first.
func (uc *UseCase) ListByUser(userID string, page dto.PageRequest) (*dto.EntryListResponse, error) {
	entries, err := uc.entries.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toEntryList(entries, page), nil
}

// ListAll returns a filtered page across all staff, most recent first.
func (uc *UseCase) ListAll(f ledger.EntryFilter, page dto.PageRequest) (*dto.EntryListResponse, error) {
	entries, err := uc.entries.ListAll()
	if err != nil {
		return nil, err
	}
	return toEntryList(ledger.FilterEntries(entries, f), page), nil
}

func toEntryList(entries []entity.CashFlowEntry, page dto.PageRequest) *dto.EntryListResponse {
	page.DefaultPage()
	total := len(entries)

	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	out := make([]dto.EntryResponse, 0, end-start)
	for _, e := range entries[start:end] {
		out = append(out, dto.ToEntryResponse(e))
	}
	return &dto.EntryListResponse{
		Entries: out,
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
}
