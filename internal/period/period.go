package period

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Period is a calendar year-month key like "2022-01". The zero-padded form
// makes string order equal to chronological order.
type Period string

// Format returns the period for year and month, e.g. Format(2022, 1) == "2022-01".
func Format(year, month int) Period {
	return Period(fmt.Sprintf("%04d-%02d", year, month))
}

// FromDate returns the period containing t.
func FromDate(t time.Time) Period {
	return Format(t.Year(), int(t.Month()))
}

// Parse parses "2022-01" (or "2022-1") into a Period.
func Parse(s string) (Period, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid period format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid year in period %q: %w", s, err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid month in period %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month %d out of range in period %q", month, s)
	}

	return Format(year, month), nil
}

// Split returns the year and month of p. An unparsable period yields 0, 0.
func (p Period) Split() (year, month int) {
	parts := strings.SplitN(string(p), "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0
	}
	return year, month
}

// Year returns the year part of p.
func (p Period) Year() int {
	y, _ := p.Split()
	return y
}

// Month returns the month part of p (1-12).
func (p Period) Month() int {
	_, m := p.Split()
	return m
}

// AddMonths returns the period n months after p (n may be negative).
func (p Period) AddMonths(n int) Period {
	y, m := p.Split()
	idx := y*12 + (m - 1) + n
	return Format(idx/12, idx%12+1)
}

func (p Period) String() string { return string(p) }

// Sort sorts periods chronologically in place.
func Sort(ps []Period) {
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
}
