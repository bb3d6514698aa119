package report

import (
	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/period"
)

// KpiRow holds the headline ratios of one period.
type KpiRow struct {
	Period       period.Period
	Year         int
	Month        int
	SalesRevenue decimal.Decimal
	MarginPct    decimal.Decimal
	EBITDA       decimal.Decimal
	NetResult    decimal.Decimal
	DSO          decimal.Decimal // days
	DIO          decimal.Decimal // days
	DPO          decimal.Decimal // days
	CCC          decimal.Decimal // days, DIO + DSO - DPO
	CashPosition decimal.Decimal
	ROE          decimal.Decimal // %
	ROA          decimal.Decimal // %
	DebtToEquity decimal.Decimal
	QuickRatio   decimal.Decimal
}

// BuildKPIs derives one KPI row per balance sheet period from the P&L and
// balance sheet tables. Every ratio with a zero denominator is zero.
func BuildKPIs(pnl []ProfitAndLossRow, bs []BalanceSheetRow) []KpiRow {
	byPeriod := make(map[period.Period]ProfitAndLossRow, len(pnl))
	for _, r := range pnl {
		byPeriod[r.Period] = r
	}

	rows := make([]KpiRow, 0, len(bs))
	for _, b := range bs {
		pl := byPeriod[b.Period]
		k := KpiRow{
			Period:       b.Period,
			Year:         b.Year,
			Month:        b.Month,
			SalesRevenue: pl.SalesRevenue,
			MarginPct:    pl.GrossMarginPct,
			EBITDA:       pl.EBITDA,
			NetResult:    pl.NetResult,
			DSO:          days(b.Receivables, pl.SalesRevenue),
			DIO:          days(b.Inventory, pl.COGS),
			DPO:          days(b.Payables, pl.COGS),
			CashPosition: b.Cash,
			ROE:          percent(pl.NetResult, b.TotalEquity),
			ROA:          percent(pl.NetResult, b.TotalAssets),
			DebtToEquity: safeDiv(b.TotalLiabilities, b.TotalEquity),
			QuickRatio:   safeDiv(b.Cash.Add(b.Receivables), b.CurrentLiabilities()),
		}
		k.CCC = k.DIO.Add(k.DSO).Sub(k.DPO)
		rows = append(rows, k)
	}
	return rows
}
