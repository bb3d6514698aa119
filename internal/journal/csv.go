package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/accounts"
	"github.com/aifina/aifina/internal/model"
)

// Header is the CSV header written for journal files.
var Header = []string{"Date", "Account", "Debit", "Credit", "Solde", "Supplier/client", "Component"}

// Column keys, matched case-insensitively against the header row.
const (
	colDate         = "date"
	colAccount      = "account"
	colDebit        = "debit"
	colCredit       = "credit"
	colSolde        = "solde"
	colCounterparty = "supplier/client"
	colComponent    = "component"
)

const dateFormat = "2006-01-02"

// dateFormats are tried in order when parsing the Date column.
var dateFormats = []string{
	dateFormat,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
}

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("missing required column")

// RowWarning records a value the normalizer coerced instead of rejecting.
type RowWarning struct {
	File        string
	Row         int
	Column      string
	Description string
}

func (w RowWarning) Error() string {
	if w.File != "" {
		return fmt.Sprintf("%s row %d [%s]: %s", w.File, w.Row, w.Column, w.Description)
	}
	return fmt.Sprintf("row %d [%s]: %s", w.Row, w.Column, w.Description)
}

// columns maps lowercased header names to their index.
type columns map[string]int

func parseHeader(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, req := range []string{colDate, colAccount} {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, req)
		}
	}
	return cols, nil
}

func (c columns) get(rec []string, name string) (string, bool) {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return "", false
	}
	return strings.TrimSpace(rec[i]), true
}

// ReadLines reads a journal CSV export and normalizes every row. Unparsable
// amounts become zero and are reported as warnings; an unparsable date fails
// the read since no period can be derived from it.
func ReadLines(r io.Reader) ([]model.LedgerLine, []RowWarning, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, nil
	}

	cols, err := parseHeader(records[0])
	if err != nil {
		return nil, nil, fmt.Errorf("reading journal header: %w", err)
	}

	var lines []model.LedgerLine
	var warnings []RowWarning
	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		line, ws, err := unmarshalLine(cols, rec, i+2)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
		warnings = append(warnings, ws...)
	}
	return lines, warnings, nil
}

// WriteLines writes lines to a journal CSV writer (including header).
func WriteLines(w io.Writer, lines []model.LedgerLine) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalLine converts a LedgerLine to a CSV row in Header order.
func MarshalLine(line model.LedgerLine) []string {
	row := make([]string, len(Header))
	row[0] = line.Date.Format(dateFormat)
	row[1] = line.Account
	if !line.Debit.IsZero() {
		row[2] = line.Debit.StringFixed(2)
	}
	if !line.Credit.IsZero() {
		row[3] = line.Credit.StringFixed(2)
	}
	row[4] = line.Balance.StringFixed(2)
	row[5] = line.Counterparty
	row[6] = line.Component
	return row
}

// unmarshalLine converts a CSV row to a LedgerLine using the header columns.
// rowNum is only used to label warnings.
func unmarshalLine(cols columns, rec []string, rowNum int) (model.LedgerLine, []RowWarning, error) {
	var warnings []RowWarning
	warn := func(col, format string, args ...any) {
		warnings = append(warnings, RowWarning{Row: rowNum, Column: col, Description: fmt.Sprintf(format, args...)})
	}

	rawDate, _ := cols.get(rec, colDate)
	date, err := parseDate(rawDate)
	if err != nil {
		return model.LedgerLine{}, nil, err
	}

	account, _ := cols.get(rec, colAccount)
	if account == "" {
		warn(colAccount, "empty account name")
	}

	amount := func(col string) decimal.Decimal {
		raw, ok := cols.get(rec, col)
		if !ok || raw == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			warn(col, "unparsable amount %q, using 0", raw)
			return decimal.Zero
		}
		return d
	}

	debit := amount(colDebit)
	credit := amount(colCredit)
	if debit.IsNegative() {
		warn(colDebit, "negative debit %s", debit)
	}
	if credit.IsNegative() {
		warn(colCredit, "negative credit %s", credit)
	}

	counterparty, _ := cols.get(rec, colCounterparty)
	component, _ := cols.get(rec, colComponent)

	line := model.NewLedgerLine(date, accounts.Canonical(account), debit, credit, counterparty, component)

	if raw, ok := cols.get(rec, colSolde); ok && raw != "" {
		if solde, err := decimal.NewFromString(raw); err != nil {
			warn(colSolde, "unparsable solde %q, ignored", raw)
		} else if !solde.Equal(line.Balance) {
			warn(colSolde, "solde %s != debit - credit %s, using debit - credit", solde, line.Balance)
		}
	}

	return line, warnings, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unsupported format", s)
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
