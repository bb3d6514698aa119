package render

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/period"
	"github.com/aifina/aifina/internal/report"
)

type kind int

const (
	textCell kind = iota
	moneyCell
	percentCell
	daysCell
	ratioCell
)

type cell struct {
	kind  kind
	text  string
	value decimal.Decimal
}

func text(s string) cell { return cell{kind: textCell, text: s} }

// table is a format-independent view of one report table. The first column
// is always text.
type table struct {
	title  string
	header []string
	rows   [][]cell
}

// line is one row of a statement table: a label and how to read its value
// from a period row.
type line[R any] struct {
	label string
	kind  kind
	value func(R) decimal.Decimal
}

// statement lays out rows as one column per period and one row per line.
func statement[R any](title string, periods []period.Period, rows []R, lines []line[R]) table {
	t := table{title: title, header: []string{title}}
	for _, p := range periods {
		t.header = append(t.header, p.String())
	}
	if len(rows) == 0 {
		return t
	}
	for _, l := range lines {
		r := []cell{text(l.label)}
		for _, row := range rows {
			r = append(r, cell{kind: l.kind, value: l.value(row)})
		}
		t.rows = append(t.rows, r)
	}
	return t
}

func pnlPeriods(rows []report.ProfitAndLossRow) []period.Period {
	out := make([]period.Period, len(rows))
	for i, r := range rows {
		out[i] = r.Period
	}
	return out
}

func balancePeriods(rows []report.BalanceSheetRow) []period.Period {
	out := make([]period.Period, len(rows))
	for i, r := range rows {
		out[i] = r.Period
	}
	return out
}

func kpiPeriods(rows []report.KpiRow) []period.Period {
	out := make([]period.Period, len(rows))
	for i, r := range rows {
		out[i] = r.Period
	}
	return out
}

type pnl = report.ProfitAndLossRow

func profitAndLossTable(rows []pnl) table {
	return statement("Profit & Loss", pnlPeriods(rows), rows, []line[pnl]{
		{"Sales Revenue", moneyCell, func(r pnl) decimal.Decimal { return r.SalesRevenue }},
		{"Cost of Goods Sold", moneyCell, func(r pnl) decimal.Decimal { return r.COGS }},
		{"Gross Margin", moneyCell, func(r pnl) decimal.Decimal { return r.GrossMargin }},
		{"Gross Margin %", percentCell, func(r pnl) decimal.Decimal { return r.GrossMarginPct }},
		{"Personnel", moneyCell, func(r pnl) decimal.Decimal { return r.Personnel }},
		{"Facility", moneyCell, func(r pnl) decimal.Decimal { return r.Facility }},
		{"Administration", moneyCell, func(r pnl) decimal.Decimal { return r.Administration }},
		{"EBITDA", moneyCell, func(r pnl) decimal.Decimal { return r.EBITDA }},
		{"Financial Income", moneyCell, func(r pnl) decimal.Decimal { return r.FinancialIncome }},
		{"Financial Cost", moneyCell, func(r pnl) decimal.Decimal { return r.FinancialCost }},
		{"Net Result", moneyCell, func(r pnl) decimal.Decimal { return r.NetResult }},
	})
}

type bs = report.BalanceSheetRow

func balanceSheetTable(rows []bs) table {
	return statement("Balance Sheet", balancePeriods(rows), rows, []line[bs]{
		{"Cash and Cash Equivalents", moneyCell, func(r bs) decimal.Decimal { return r.Cash }},
		{"Accounts Receivable", moneyCell, func(r bs) decimal.Decimal { return r.Receivables }},
		{"Raw Material Inventory", moneyCell, func(r bs) decimal.Decimal { return r.Inventory }},
		{"PPE", moneyCell, func(r bs) decimal.Decimal { return r.PPE }},
		{"Intangible Assets", moneyCell, func(r bs) decimal.Decimal { return r.Intangibles }},
		{"Total Assets", moneyCell, func(r bs) decimal.Decimal { return r.TotalAssets }},
		{"Accounts Payable", moneyCell, func(r bs) decimal.Decimal { return r.Payables }},
		{"Short-Term Debt", moneyCell, func(r bs) decimal.Decimal { return r.ShortTermDebt }},
		{"Wages Payables", moneyCell, func(r bs) decimal.Decimal { return r.WagesPayable }},
		{"Total Liabilities", moneyCell, func(r bs) decimal.Decimal { return r.TotalLiabilities }},
		{"Share Capital", moneyCell, func(r bs) decimal.Decimal { return r.ShareCapital }},
		{"Retained Earnings", moneyCell, func(r bs) decimal.Decimal { return r.RetainedEarnings }},
		{"Ongoing Earnings", moneyCell, func(r bs) decimal.Decimal { return r.OngoingEarnings }},
		{"Total Equity", moneyCell, func(r bs) decimal.Decimal { return r.TotalEquity }},
		{"Liabilities and Equity", moneyCell, func(r bs) decimal.Decimal { return r.LiabilitiesAndEquity }},
		{"Unreconciled", moneyCell, func(r bs) decimal.Decimal { return r.Gap() }},
	})
}

type kpi = report.KpiRow

func kpiTable(rows []kpi) table {
	return statement("KPIs", kpiPeriods(rows), rows, []line[kpi]{
		{"Sales Revenue", moneyCell, func(r kpi) decimal.Decimal { return r.SalesRevenue }},
		{"Margin %", percentCell, func(r kpi) decimal.Decimal { return r.MarginPct }},
		{"EBITDA", moneyCell, func(r kpi) decimal.Decimal { return r.EBITDA }},
		{"Net Result", moneyCell, func(r kpi) decimal.Decimal { return r.NetResult }},
		{"DSO (days)", daysCell, func(r kpi) decimal.Decimal { return r.DSO }},
		{"DIO (days)", daysCell, func(r kpi) decimal.Decimal { return r.DIO }},
		{"DPO (days)", daysCell, func(r kpi) decimal.Decimal { return r.DPO }},
		{"Cash Conversion Cycle (days)", daysCell, func(r kpi) decimal.Decimal { return r.CCC }},
		{"Cash Position", moneyCell, func(r kpi) decimal.Decimal { return r.CashPosition }},
		{"ROE", percentCell, func(r kpi) decimal.Decimal { return r.ROE }},
		{"ROA", percentCell, func(r kpi) decimal.Decimal { return r.ROA }},
		{"Debt to Equity", ratioCell, func(r kpi) decimal.Decimal { return r.DebtToEquity }},
		{"Quick Ratio", ratioCell, func(r kpi) decimal.Decimal { return r.QuickRatio }},
	})
}

func topClientsTable(rows []report.ClientRevenue) table {
	t := table{title: "Top Clients", header: []string{"Period", "Rank", "Client", "Revenue", "Share"}}
	for _, r := range rows {
		t.rows = append(t.rows, []cell{
			text(r.Period.String()),
			text(strconv.Itoa(r.Rank)),
			text(r.Client),
			{kind: moneyCell, value: r.Revenue},
			{kind: percentCell, value: r.Share},
		})
	}
	return t
}

func componentsTable(rows []report.ComponentRevenue) table {
	t := table{title: "Revenue by Component", header: []string{"Period", "Component", "Revenue"}}
	for _, r := range rows {
		t.rows = append(t.rows, []cell{
			text(r.Period.String()),
			text(r.Component),
			{kind: moneyCell, value: r.Revenue},
		})
	}
	return t
}

func summaryTable(s report.Summary) table {
	t := table{title: "Summary " + s.Period.String(), header: []string{"Metric", "Value"}}
	t.rows = [][]cell{
		{text("Sales Revenue"), {kind: moneyCell, value: s.SalesRevenue}},
		{text("Cost of Goods Sold"), {kind: moneyCell, value: s.COGS}},
		{text("Gross Margin"), {kind: moneyCell, value: s.GrossMargin}},
		{text("OPEX"), {kind: moneyCell, value: s.Opex}},
		{text("EBITDA"), {kind: moneyCell, value: s.EBITDA}},
		{text("Margin %"), {kind: percentCell, value: s.MarginPct}},
	}
	return t
}
