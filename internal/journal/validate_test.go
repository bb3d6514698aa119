package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aifina/aifina/internal/model"
)

func TestValidateLinesClean(t *testing.T) {
	lines := []model.LedgerLine{
		model.NewLedgerLine(date(2022, 1, 5), "sales revenue", decimal.Zero, dec("10.25"), "", ""),
		model.NewLedgerLine(date(2022, 1, 5), "cash and cash equivalents", dec("10.25"), decimal.Zero, "", ""),
	}
	assert.Empty(t, ValidateLines(lines))
}

func TestValidateLines(t *testing.T) {
	good := model.NewLedgerLine(date(2022, 1, 5), "personnel", dec("10"), decimal.Zero, "", "")

	tests := []struct {
		name   string
		mutate func(l *model.LedgerLine)
		want   Rule
	}{
		{"balance", func(l *model.LedgerLine) { l.Balance = dec("11") }, RuleBalance},
		{"period", func(l *model.LedgerLine) { l.Period = "2022-02" }, RulePeriod},
		{"sign", func(l *model.LedgerLine) { l.Debit = dec("-10"); l.Balance = dec("-10") }, RuleSign},
		{"precision", func(l *model.LedgerLine) { l.Debit = dec("10.001"); l.Balance = dec("10.001") }, RulePrecision},
		{"account", func(l *model.LedgerLine) { l.Account = "" }, RuleAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := good
			tt.mutate(&line)
			errs := ValidateLines([]model.LedgerLine{good, line})
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[0].Rule)
			assert.Equal(t, 2, errs[0].Line)
			assert.Contains(t, errs[0].Error(), "line 2")
		})
	}
}
