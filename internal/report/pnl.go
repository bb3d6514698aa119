package report

import (
	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/accounts"
	"github.com/aifina/aifina/internal/aggregate"
	"github.com/aifina/aifina/internal/period"
)

// ProfitAndLossRow is the income statement of one period.
type ProfitAndLossRow struct {
	Period          period.Period
	Year            int
	Month           int
	SalesRevenue    decimal.Decimal
	COGS            decimal.Decimal
	GrossMargin     decimal.Decimal
	GrossMarginPct  decimal.Decimal
	Personnel       decimal.Decimal
	Facility        decimal.Decimal
	Administration  decimal.Decimal
	EBITDA          decimal.Decimal
	FinancialIncome decimal.Decimal
	FinancialCost   decimal.Decimal
	NetResult       decimal.Decimal
}

// Opex returns the sum of the three operating expense lines.
func (r ProfitAndLossRow) Opex() decimal.Decimal {
	return sum(r.Personnel, r.Facility, r.Administration)
}

// BuildProfitAndLoss computes one P&L row per period of axis. Accounts with
// no lines in a period contribute zero.
func BuildProfitAndLoss(b *aggregate.Balances, axis []period.Period) []ProfitAndLossRow {
	rows := make([]ProfitAndLossRow, 0, len(axis))
	for _, p := range axis {
		year, month := p.Split()
		r := ProfitAndLossRow{
			Period:          p,
			Year:            year,
			Month:           month,
			SalesRevenue:    statement(b, p, accounts.SalesRevenue),
			COGS:            statement(b, p, accounts.COGS),
			Personnel:       statement(b, p, accounts.Personnel),
			Facility:        statement(b, p, accounts.Facility),
			Administration:  statement(b, p, accounts.Administration),
			FinancialIncome: statement(b, p, accounts.FinancialIncome),
			FinancialCost:   statement(b, p, accounts.FinancialCost),
		}
		r.GrossMargin = r.SalesRevenue.Sub(r.COGS)
		r.GrossMarginPct = percent(r.GrossMargin, r.SalesRevenue)
		r.EBITDA = r.GrossMargin.Sub(r.Opex())
		r.NetResult = r.EBITDA.Add(r.FinancialIncome).Sub(r.FinancialCost)
		rows = append(rows, r)
	}
	return rows
}
