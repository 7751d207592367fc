package dto

import (
	"github.com/shopspring/decimal"

	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// EntryRequest body for creating or replacing a cash-flow entry. Id,
// owning user and time-of-day are assigned server-side.
type EntryRequest struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Recipient   string          `json:"recipient,omitempty"`
}

// EntryResponse is a stored cash-flow entry.
type EntryResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	UserName    string          `json:"userName"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Recipient   string          `json:"recipient,omitempty"`
}

// EntryListResponse a page of entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Page    PageResponse    `json:"page"`
}

// ToEntryResponse maps the entity.
func ToEntryResponse(e entity.CashFlowEntry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		UserName:    e.UserName,
		Date:        e.Date,
		Time:        e.Time,
		Type:        e.Type,
		Amount:      e.Amount,
		Description: e.Description,
		Recipient:   e.Recipient,
	}
}
