package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/aifina/aifina/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// debit and credit build one ledger line on the 15th of y-m.
func debit(y, m int, account, amount string) model.LedgerLine {
	return model.NewLedgerLine(day(y, m), account, dec(amount), decimal.Zero, "", "")
}

func credit(y, m int, account, amount string) model.LedgerLine {
	return model.NewLedgerLine(day(y, m), account, decimal.Zero, dec(amount), "", "")
}

func sale(y, m int, client, component, amount string) model.LedgerLine {
	return model.NewLedgerLine(day(y, m), "sales revenue", decimal.Zero, dec(amount), client, component)
}

func day(y, m int) time.Time {
	return time.Date(y, time.Month(m), 15, 0, 0, 0, 0, time.UTC)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", label, want, got)
}
