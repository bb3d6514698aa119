package report

import (
	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/accounts"
	"github.com/aifina/aifina/internal/aggregate"
	"github.com/aifina/aifina/internal/period"
)

// BalanceSheetRow is the balance sheet of one period. Liability and equity
// lines are credit-positive.
type BalanceSheetRow struct {
	Period period.Period
	Year   int
	Month  int

	Cash        decimal.Decimal
	Receivables decimal.Decimal
	Inventory   decimal.Decimal
	PPE         decimal.Decimal
	Intangibles decimal.Decimal

	Payables      decimal.Decimal
	ShortTermDebt decimal.Decimal
	WagesPayable  decimal.Decimal

	ShareCapital     decimal.Decimal
	RetainedEarnings decimal.Decimal
	OngoingEarnings  decimal.Decimal // running total of P&L net result

	TotalAssets          decimal.Decimal
	TotalLiabilities     decimal.Decimal
	TotalEquity          decimal.Decimal
	LiabilitiesAndEquity decimal.Decimal
}

// CurrentLiabilities returns payables plus short-term debt.
func (r BalanceSheetRow) CurrentLiabilities() decimal.Decimal {
	return r.Payables.Add(r.ShortTermDebt)
}

// Gap returns TotalAssets - LiabilitiesAndEquity.
func (r BalanceSheetRow) Gap() decimal.Decimal {
	return r.TotalAssets.Sub(r.LiabilitiesAndEquity)
}

// Reconciles reports whether total assets equal liabilities plus equity.
// Nothing forces this; a ledger that does not close its flows into the
// balance accounts yields rows that do not reconcile.
func (r BalanceSheetRow) Reconciles() bool {
	return r.Gap().IsZero()
}

// BuildBalanceSheet computes one balance sheet row per period of axis.
// Ongoing earnings accumulate pnl's net result in axis order; periods
// missing from pnl add nothing to the running total.
func BuildBalanceSheet(b *aggregate.Balances, pnl []ProfitAndLossRow, axis []period.Period) []BalanceSheetRow {
	net := make(map[period.Period]decimal.Decimal, len(pnl))
	for _, r := range pnl {
		net[r.Period] = r.NetResult
	}

	rows := make([]BalanceSheetRow, 0, len(axis))
	cumulative := decimal.Zero
	for _, p := range axis {
		cumulative = cumulative.Add(net[p])
		year, month := p.Split()
		r := BalanceSheetRow{
			Period:           p,
			Year:             year,
			Month:            month,
			Cash:             statement(b, p, accounts.Cash),
			Receivables:      statement(b, p, accounts.Receivables),
			Inventory:        statement(b, p, accounts.Inventory),
			PPE:              statement(b, p, accounts.PPE),
			Intangibles:      statement(b, p, accounts.Intangibles),
			Payables:         statement(b, p, accounts.Payables),
			ShortTermDebt:    statement(b, p, accounts.ShortTermDebt),
			WagesPayable:     statement(b, p, accounts.WagesPayable),
			ShareCapital:     statement(b, p, accounts.ShareCapital),
			RetainedEarnings: statement(b, p, accounts.RetainedEarnings),
			OngoingEarnings:  cumulative,
		}
		r.TotalAssets = sum(r.Cash, r.Receivables, r.Inventory, r.PPE, r.Intangibles)
		r.TotalLiabilities = sum(r.Payables, r.ShortTermDebt, r.WagesPayable)
		r.TotalEquity = sum(r.ShareCapital, r.RetainedEarnings, r.OngoingEarnings)
		r.LiabilitiesAndEquity = r.TotalLiabilities.Add(r.TotalEquity)
		rows = append(rows, r)
	}
	return rows
}
