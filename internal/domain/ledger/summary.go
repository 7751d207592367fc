// Package ledger holds the pure cash-flow aggregation rules: the four-bucket
// summary fold and the daily/monthly/yearly chart bucketing. Everything here
// is side-effect free so re-computation is always safe.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// Summary is the four running totals shown on the dashboard cards.
// IncomeTotal and OTPTotal are net (additions minus expenses/payments);
// IncomeSpent and OTPSpent accumulate only the outgoing side.
type Summary struct {
	IncomeTotal decimal.Decimal `json:"incomeTotal"`
	OTPTotal    decimal.Decimal `json:"otpTotal"`
	IncomeSpent decimal.Decimal `json:"incomeSpent"`
	OTPSpent    decimal.Decimal `json:"otpSpent"`
}

// NewSummary returns a zeroed summary.
func NewSummary() Summary {
	z := decimal.Zero
	return Summary{IncomeTotal: z, OTPTotal: z, IncomeSpent: z, OTPSpent: z}
}

// Apply folds one entry into the summary and returns the result.
func (s Summary) Apply(e entity.CashFlowEntry) Summary {
	switch e.Type {
	case entity.TypeIncomeAdd:
		s.IncomeTotal = s.IncomeTotal.Add(e.Amount)
	case entity.TypeIncomeMinus, entity.TypeIncomePayment:
		s.IncomeTotal = s.IncomeTotal.Sub(e.Amount)
		s.IncomeSpent = s.IncomeSpent.Add(e.Amount)
	case entity.TypeOTPAdd:
		s.OTPTotal = s.OTPTotal.Add(e.Amount)
	case entity.TypeOTPMinus, entity.TypeOTPPayment:
		s.OTPTotal = s.OTPTotal.Sub(e.Amount)
		s.OTPSpent = s.OTPSpent.Add(e.Amount)
	}
	return s
}

// GrandTotal is the sum of both net buckets. May be negative.
func (s Summary) GrandTotal() decimal.Decimal {
	return s.IncomeTotal.Add(s.OTPTotal)
}

// Summarize folds all entries. The fold is commutative, so any permutation of
// the same entries yields identical totals.
func Summarize(entries []entity.CashFlowEntry) Summary {
	s := NewSummary()
	for _, e := range entries {
		s = s.Apply(e)
	}
	return s
}
