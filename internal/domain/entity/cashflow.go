package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amintouch/ledger-api/internal/domain"
)

// Cash-flow entry types. Income and OTP ("On The Point" cash) are two buckets
// tracked in parallel; Minus is an internal expense, Payment is money paid out
// to a named third party.
const (
	TypeIncomeAdd     = "Income Add"
	TypeIncomeMinus   = "Income Minus"
	TypeIncomePayment = "Income Payment"
	TypeOTPAdd        = "OTP Add"
	TypeOTPMinus      = "OTP Minus"
	TypeOTPPayment    = "OTP Payment"
)

// Date and time-of-day layouts used across entries.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// CashFlowEntry is one daily cash-flow record owned by a staff member.
type CashFlowEntry struct {
	ID          string
	UserID      string
	UserName    string
	Date        string // DateLayout
	Time        string // TimeLayout, captured on create
	Type        string
	Amount      decimal.Decimal
	Description string
	Recipient   string // required iff Type is a payment type
}

// ValidEntryType reports whether s is one of the six entry types.
func ValidEntryType(s string) bool {
	switch s {
	case TypeIncomeAdd, TypeIncomeMinus, TypeIncomePayment,
		TypeOTPAdd, TypeOTPMinus, TypeOTPPayment:
		return true
	}
	return false
}

// IsPaymentType reports whether s represents money paid to a third party.
func IsPaymentType(s string) bool {
	return s == TypeIncomePayment || s == TypeOTPPayment
}

// Validate checks the entry invariants. Identity fields (ID, Time) are
// assigned by the application on create and are not checked here.
func (e CashFlowEntry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if !ValidEntryType(e.Type) {
		return fmt.Errorf("%w: unknown entry type %q", domain.ErrValidation, e.Type)
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if e.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if IsPaymentType(e.Type) && e.Recipient == "" {
		return fmt.Errorf("%w: recipient is required for payment entries", domain.ErrValidation)
	}
	return nil
}
