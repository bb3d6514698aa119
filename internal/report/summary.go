package report

import (
	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/period"
)

// Summary is the executive view of one period.
type Summary struct {
	Period       period.Period
	SalesRevenue decimal.Decimal
	COGS         decimal.Decimal
	GrossMargin  decimal.Decimal
	Opex         decimal.Decimal
	EBITDA       decimal.Decimal
	MarginPct    decimal.Decimal
}

// Summarize condenses a P&L row.
func Summarize(r ProfitAndLossRow) Summary {
	return Summary{
		Period:       r.Period,
		SalesRevenue: r.SalesRevenue,
		COGS:         r.COGS,
		GrossMargin:  r.GrossMargin,
		Opex:         r.Opex(),
		EBITDA:       r.EBITDA,
		MarginPct:    r.GrossMarginPct,
	}
}
