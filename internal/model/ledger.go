package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/period"
)

// LedgerLine is one debit/credit line of the general ledger, normalized.
type LedgerLine struct {
	Date         time.Time
	Period       period.Period
	Account      string          // canonical account name, see CanonicalAccount
	Debit        decimal.Decimal // non-negative
	Credit       decimal.Decimal // non-negative
	Balance      decimal.Decimal // always Debit - Credit
	Counterparty string          // supplier or client, may be empty
	Component    string          // product / line of business, may be empty
}

// NewLedgerLine builds a line, deriving Period, the canonical account name
// and Balance.
func NewLedgerLine(date time.Time, account string, debit, credit decimal.Decimal, counterparty, component string) LedgerLine {
	return LedgerLine{
		Date:         date,
		Period:       period.FromDate(date),
		Account:      CanonicalAccount(account),
		Debit:        debit,
		Credit:       credit,
		Balance:      debit.Sub(credit),
		Counterparty: strings.TrimSpace(counterparty),
		Component:    strings.TrimSpace(component),
	}
}

// Net returns credit minus debit, the revenue-positive view of the line.
func (l LedgerLine) Net() decimal.Decimal {
	return l.Balance.Neg()
}

// CanonicalAccount lowercases and trims an account name.
func CanonicalAccount(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
