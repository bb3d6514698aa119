package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aifina/aifina/internal/accounts"
	"github.com/aifina/aifina/internal/aggregate"
	"github.com/aifina/aifina/internal/model"
	"github.com/aifina/aifina/internal/period"
)

// ErrNoData is returned when there are no ledger lines to report on.
var ErrNoData = errors.New("no ledger lines to report on")

// WarningKind classifies a non-fatal finding of a pipeline run.
type WarningKind string

const (
	// WarnUnknownAccount: the ledger uses an account the chart does not
	// classify. Its lines are left out of every statement.
	WarnUnknownAccount WarningKind = "unknown_account"
	// WarnMissingAccount: a statement account has no lines at all and
	// reports as zero everywhere.
	WarnMissingAccount WarningKind = "missing_account"
)

// Warning is a recoverable finding. The report is complete regardless.
type Warning struct {
	Kind    WarningKind
	Account string
	Lines   int
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnUnknownAccount:
		return fmt.Sprintf("unclassified account %q (%d lines) excluded from statements", w.Account, w.Lines)
	case WarnMissingAccount:
		return fmt.Sprintf("no ledger lines for %q, reported as zero", w.Account)
	default:
		return fmt.Sprintf("%s: %s", w.Kind, w.Account)
	}
}

// PartialDataError lists statement accounts that had no data and were
// zero-filled. It is informational: the report is still usable.
type PartialDataError struct {
	Accounts []string
}

func (e *PartialDataError) Error() string {
	return fmt.Sprintf("partial data: no lines for %s", strings.Join(e.Accounts, ", "))
}

// Options controls a pipeline run.
type Options struct {
	// Accounts restricts the ledger to these accounts before aggregation.
	// Empty keeps every line.
	Accounts []string
	// TopClients is the per-period length of the client ranking.
	// Zero means DefaultTopClients; negative keeps every client.
	TopClients int
}

// Report holds every table of one pipeline run, keyed by period.
type Report struct {
	Periods            []period.Period
	ProfitAndLoss      []ProfitAndLossRow
	BalanceSheet       []BalanceSheetRow
	KPIs               []KpiRow
	RevenueByComponent []ComponentRevenue
	TopClients         []ClientRevenue
	Warnings           []Warning
}

// Run computes all reports from scratch. It is a pure function of lines
// and opts; two runs over the same input produce identical reports.
func Run(lines []model.LedgerLine, opts Options) (*Report, error) {
	lines = restrict(canonical(lines), opts.Accounts)
	if len(lines) == 0 {
		return nil, ErrNoData
	}

	top := opts.TopClients
	if top == 0 {
		top = DefaultTopClients
	}

	b := aggregate.Aggregate(lines)
	axis := b.Periods()

	pnl := BuildProfitAndLoss(b, axis)
	bs := BuildBalanceSheet(b, pnl, axis)

	return &Report{
		Periods:            axis,
		ProfitAndLoss:      pnl,
		BalanceSheet:       bs,
		KPIs:               BuildKPIs(pnl, bs),
		RevenueByComponent: RevenueByComponent(lines),
		TopClients:         TopClients(lines, top),
		Warnings:           coverage(b),
	}, nil
}

// canonical returns a copy of lines with account aliases resolved, so the
// aggregate and the classifier agree on every name.
func canonical(lines []model.LedgerLine) []model.LedgerLine {
	out := make([]model.LedgerLine, len(lines))
	for i, l := range lines {
		l.Account = accounts.Canonical(l.Account)
		out[i] = l
	}
	return out
}

func restrict(lines []model.LedgerLine, names []string) []model.LedgerLine {
	if len(names) == 0 {
		return lines
	}
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[accounts.Canonical(n)] = true
	}
	var out []model.LedgerLine
	for _, l := range lines {
		if keep[l.Account] {
			out = append(out, l)
		}
	}
	return out
}

// coverage reports unclassified ledger accounts and statement accounts with
// no lines, in that order, each sorted by name.
func coverage(b *aggregate.Balances) []Warning {
	var warnings []Warning
	for _, name := range b.Accounts() {
		if chart.Exists(name) {
			continue
		}
		n := 0
		for _, p := range b.Periods() {
			n += b.Lines(p, name)
		}
		warnings = append(warnings, Warning{Kind: WarnUnknownAccount, Account: name, Lines: n})
	}

	var missing []Warning
	for _, acct := range chart.All() {
		if acct.Synthetic || b.Has(acct.Name) {
			continue
		}
		missing = append(missing, Warning{Kind: WarnMissingAccount, Account: acct.Name})
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Account < missing[j].Account })
	return append(warnings, missing...)
}

// Partial returns a *PartialDataError when any statement account was
// zero-filled for lack of data, nil otherwise.
func (r *Report) Partial() error {
	var names []string
	for _, w := range r.Warnings {
		if w.Kind == WarnMissingAccount {
			names = append(names, w.Account)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return &PartialDataError{Accounts: names}
}

// Unreconciled returns the balance sheet rows whose total assets differ
// from liabilities plus equity.
func (r *Report) Unreconciled() []BalanceSheetRow {
	var rows []BalanceSheetRow
	for _, b := range r.BalanceSheet {
		if !b.Reconciles() {
			rows = append(rows, b)
		}
	}
	return rows
}

// Latest returns the most recent period, or "" for an empty report.
func (r *Report) Latest() period.Period {
	if len(r.Periods) == 0 {
		return ""
	}
	return r.Periods[len(r.Periods)-1]
}

// Summary returns the executive summary of p.
func (r *Report) Summary(p period.Period) (Summary, bool) {
	for _, row := range r.ProfitAndLoss {
		if row.Period == p {
			return Summarize(row), true
		}
	}
	return Summary{}, false
}

// Select returns a copy of r keeping only the periods matched by f. Values
// are not recomputed: ongoing earnings still include every earlier period.
// A zero filter yields a shallow copy sharing r's tables.
func (r *Report) Select(f period.Filter) *Report {
	if f.IsZero() {
		out := *r
		return &out
	}
	f = f.Resolve(r.Latest())

	out := &Report{Warnings: r.Warnings}
	for _, p := range r.Periods {
		if f.Match(p) {
			out.Periods = append(out.Periods, p)
		}
	}
	for _, row := range r.ProfitAndLoss {
		if f.Match(row.Period) {
			out.ProfitAndLoss = append(out.ProfitAndLoss, row)
		}
	}
	for _, row := range r.BalanceSheet {
		if f.Match(row.Period) {
			out.BalanceSheet = append(out.BalanceSheet, row)
		}
	}
	for _, row := range r.KPIs {
		if f.Match(row.Period) {
			out.KPIs = append(out.KPIs, row)
		}
	}
	for _, row := range r.RevenueByComponent {
		if f.Match(row.Period) {
			out.RevenueByComponent = append(out.RevenueByComponent, row)
		}
	}
	for _, row := range r.TopClients {
		if f.Match(row.Period) {
			out.TopClients = append(out.TopClients, row)
		}
	}
	return out
}
