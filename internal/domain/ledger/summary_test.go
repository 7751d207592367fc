package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

func entry(entryType string, amount int64) entity.CashFlowEntry {
	return entity.CashFlowEntry{
		Type:   entryType,
		Amount: decimal.NewFromInt(amount),
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ──────────────────────────────────────────────────────────────────────────────
// Summarize
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_MixedEntries(t *testing.T) {
	entries := []entity.CashFlowEntry{
		entry(entity.TypeIncomeAdd, 100),
		entry(entity.TypeIncomeMinus, 30),
		entry(entity.TypeOTPAdd, 50),
	}

	s := ledger.Summarize(entries)

	assert.True(t, dec(70).Equal(s.IncomeTotal), "income total: got %s", s.IncomeTotal)
	assert.True(t, dec(50).Equal(s.OTPTotal), "otp total: got %s", s.OTPTotal)
	assert.True(t, dec(30).Equal(s.IncomeSpent), "income spent: got %s", s.IncomeSpent)
	assert.True(t, s.OTPSpent.IsZero(), "otp spent: got %s", s.OTPSpent)
	assert.True(t, dec(120).Equal(s.GrandTotal()), "grand total: got %s", s.GrandTotal())
}

func TestSummarize_PaymentsCountAsSpent(t *testing.T) {
	entries := []entity.CashFlowEntry{
		entry(entity.TypeIncomeAdd, 200),
		entry(entity.TypeIncomePayment, 80),
		entry(entity.TypeOTPAdd, 100),
		entry(entity.TypeOTPPayment, 25),
		entry(entity.TypeOTPMinus, 10),
	}

	s := ledger.Summarize(entries)

	assert.True(t, dec(120).Equal(s.IncomeTotal))
	assert.True(t, dec(65).Equal(s.OTPTotal))
	assert.True(t, dec(80).Equal(s.IncomeSpent))
	assert.True(t, dec(35).Equal(s.OTPSpent))
}

func TestSummarize_EmptyIsZero(t *testing.T) {
	s := ledger.Summarize(nil)

	assert.True(t, s.IncomeTotal.IsZero())
	assert.True(t, s.OTPTotal.IsZero())
	assert.True(t, s.IncomeSpent.IsZero())
	assert.True(t, s.OTPSpent.IsZero())
	assert.True(t, s.GrandTotal().IsZero())
}

// The net totals may go negative when expenses exceed additions; the fold
// must not clamp them.
func TestSummarize_NegativeNet(t *testing.T) {
	entries := []entity.CashFlowEntry{
		entry(entity.TypeIncomeAdd, 10),
		entry(entity.TypeIncomeMinus, 40),
	}

	s := ledger.Summarize(entries)

	assert.True(t, dec(-30).Equal(s.IncomeTotal))
	assert.True(t, dec(40).Equal(s.IncomeSpent))
}

// Any permutation of the same entries must produce identical totals.
func TestSummarize_OrderIndependent(t *testing.T) {
	entries := []entity.CashFlowEntry{
		entry(entity.TypeIncomeAdd, 100),
		entry(entity.TypeIncomeMinus, 30),
		entry(entity.TypeIncomePayment, 15),
		entry(entity.TypeOTPAdd, 50),
		entry(entity.TypeOTPMinus, 5),
		entry(entity.TypeOTPPayment, 20),
	}
	want := ledger.Summarize(entries)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]entity.CashFlowEntry(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := ledger.Summarize(shuffled)
		assert.True(t, want.IncomeTotal.Equal(got.IncomeTotal))
		assert.True(t, want.OTPTotal.Equal(got.OTPTotal))
		assert.True(t, want.IncomeSpent.Equal(got.IncomeSpent))
		assert.True(t, want.OTPSpent.Equal(got.OTPSpent))
	}
}
