// Package render turns a report into Markdown, terminal or CSV output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/aifina/aifina/internal/report"
)

// Format is an output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatPretty   Format = "pretty"
	FormatCSV      Format = "csv"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatMarkdown, FormatPretty, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want markdown, pretty or csv)", s)
	}
}

// View names a report table, or all of them.
type View string

const (
	ViewPnL      View = "pnl"
	ViewBalance  View = "balance"
	ViewKPI      View = "kpi"
	ViewClients  View = "clients"
	ViewProducts View = "products"
	ViewSummary  View = "summary"
	ViewAll      View = "all"
)

// Views returns every view name in display order.
func Views() []View {
	return []View{ViewPnL, ViewBalance, ViewKPI, ViewClients, ViewProducts, ViewSummary, ViewAll}
}

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	for _, v := range Views() {
		if string(v) == strings.ToLower(s) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown report %q", s)
}

// Options controls Write.
type Options struct {
	Title   string // document heading, Markdown formats only
	Format  Format
	Amounts *Amounts
	Style   string // glamour style for FormatPretty; empty for auto
	Width   int
}

// Write renders view v of r to w.
func Write(w io.Writer, r *report.Report, v View, opts Options) error {
	tables, err := tablesFor(r, v)
	if err != nil {
		return err
	}
	if opts.Amounts == nil {
		if opts.Amounts, err = NewAmounts("USD", 1); err != nil {
			return err
		}
	}

	switch opts.Format {
	case FormatCSV:
		return CSV(w, tables)
	case FormatPretty:
		out, err := Terminal(Markdown(opts.Title, tables, opts.Amounts), opts.Style, opts.Width)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case FormatMarkdown, "":
		_, err := io.WriteString(w, Markdown(opts.Title, tables, opts.Amounts))
		return err
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

func tablesFor(r *report.Report, v View) ([]table, error) {
	switch v {
	case ViewPnL:
		return []table{profitAndLossTable(r.ProfitAndLoss)}, nil
	case ViewBalance:
		return []table{balanceSheetTable(r.BalanceSheet)}, nil
	case ViewKPI:
		return []table{kpiTable(r.KPIs)}, nil
	case ViewClients:
		return []table{topClientsTable(r.TopClients)}, nil
	case ViewProducts:
		return []table{componentsTable(r.RevenueByComponent)}, nil
	case ViewSummary:
		s, ok := r.Summary(r.Latest())
		if !ok {
			return nil, fmt.Errorf("no period to summarize")
		}
		return []table{summaryTable(s)}, nil
	case ViewAll:
		tables := []table{
			profitAndLossTable(r.ProfitAndLoss),
			balanceSheetTable(r.BalanceSheet),
			kpiTable(r.KPIs),
			topClientsTable(r.TopClients),
			componentsTable(r.RevenueByComponent),
		}
		if s, ok := r.Summary(r.Latest()); ok {
			tables = append([]table{summaryTable(s)}, tables...)
		}
		return tables, nil
	default:
		return nil, fmt.Errorf("unknown report %q", v)
	}
}
