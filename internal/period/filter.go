package period

// ltmMonths is the length of a last-twelve-months window.
const ltmMonths = 12

// Filter selects periods for display. Zero Year or Month match every year
// or month. With LTM set, the filter instead selects the twelve periods
// ending at Year-Month.
type Filter struct {
	Year  int
	Month int
	LTM   bool
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return f.Year == 0 && f.Month == 0 && !f.LTM
}

// Resolve fills an incomplete LTM anchor from latest, the most recent
// period available. Non-LTM filters are returned unchanged.
func (f Filter) Resolve(latest Period) Filter {
	if !f.LTM || latest == "" {
		return f
	}
	y, m := latest.Split()
	if f.Year == 0 {
		f.Year = y
	}
	if f.Month == 0 {
		// Within a past year, anchor on December.
		if f.Year == y {
			f.Month = m
		} else {
			f.Month = 12
		}
	}
	return f
}

// Match reports whether p passes the filter. LTM filters must be resolved
// first; an unresolved LTM filter matches nothing.
func (f Filter) Match(p Period) bool {
	if f.LTM {
		if f.Year == 0 || f.Month == 0 {
			return false
		}
		end := Format(f.Year, f.Month)
		start := end.AddMonths(-(ltmMonths - 1))
		return p >= start && p <= end
	}
	y, m := p.Split()
	if f.Year != 0 && y != f.Year {
		return false
	}
	if f.Month != 0 && m != f.Month {
		return false
	}
	return true
}
