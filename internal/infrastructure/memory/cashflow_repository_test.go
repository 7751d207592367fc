package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/infrastructure/memory"
)

func storedEntry(id, userID, date, timeOfDay string) entity.CashFlowEntry {
	return entity.CashFlowEntry{
		ID:          id,
		UserID:      userID,
		Date:        date,
		Time:        timeOfDay,
		Type:        entity.TypeIncomeAdd,
		Amount:      decimal.NewFromInt(10),
		Description: "d",
	}
}

func TestCashFlowRepository_RoundTrip(t *testing.T) {
	repo := memory.NewCashFlowRepository()
	e := storedEntry("e1", "u1", "2024-03-15", "09:00:00")

	require.NoError(t, repo.Create(&e))

	got, err := repo.GetByID("e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)

	// Mutating the returned copy must not touch the stored record.
	got.Description = "mutated"
	again, err := repo.GetByID("e1")
	require.NoError(t, err)
	assert.Equal(t, "d", again.Description)
}

func TestCashFlowRepository_GetByID_Missing(t *testing.T) {
	repo := memory.NewCashFlowRepository()
	got, err := repo.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCashFlowRepository_Update(t *testing.T) {
	repo := memory.NewCashFlowRepository()
	e := storedEntry("e1", "u1", "2024-03-15", "09:00:00")
	require.NoError(t, repo.Create(&e))

	e.Description = "corrected"
	require.NoError(t, repo.Update(&e))

	got, err := repo.GetByID("e1")
	require.NoError(t, err)
	assert.Equal(t, "corrected", got.Description)

	missing := storedEntry("e9", "u1", "2024-03-15", "09:00:00")
	assert.ErrorIs(t, repo.Update(&missing), domain.ErrNotFound)
}

func TestCashFlowRepository_Delete(t *testing.T) {
	repo := memory.NewCashFlowRepository()
	e := storedEntry("e1", "u1", "2024-03-15", "09:00:00")
	require.NoError(t, repo.Create(&e))

	require.NoError(t, repo.Delete("e1"))

	got, err := repo.GetByID("e1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete("e1"), domain.ErrNotFound)
}

func TestCashFlowRepository_ListOrdering(t *testing.T) {
	repo := memory.NewCashFlowRepository()
	older := storedEntry("e1", "u1", "2024-03-10", "09:00:00")
	newest := storedEntry("e2", "u1", "2024-03-15", "08:00:00")
	sameDayLater := storedEntry("e3", "u1", "2024-03-10", "17:30:00")
	otherUser := storedEntry("e4", "u2", "2024-03-20", "09:00:00")

	for _, e := range []entity.CashFlowEntry{older, newest, sameDayLater, otherUser} {
		e := e
		require.NoError(t, repo.Create(&e))
	}

	got, err := repo.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"e2", "e3", "e1"}, []string{got[0].ID, got[1].ID, got[2].ID},
		"most recent (date, time) first")

	all, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "e4", all[0].ID)
}
