// Package aggregate sums ledger balances by period and account.
//
// The result is sparse: a (period, account) pair with no ledger lines has
// no entry. Report builders decide which period axis to zero-fill onto.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/model"
	"github.com/aifina/aifina/internal/period"
)

// Key identifies one aggregate cell.
type Key struct {
	Period  period.Period
	Account string
}

// Balances holds the signed sum of Balance for every (period, account) pair
// present in the ledger.
type Balances struct {
	sums     map[Key]decimal.Decimal
	lines    map[Key]int
	periods  map[period.Period]struct{}
	accounts map[string]struct{}
}

// Aggregate groups lines by exact period key and account name. Decimal
// addition is exact, so input order never changes a sum.
func Aggregate(lines []model.LedgerLine) *Balances {
	b := &Balances{
		sums:     make(map[Key]decimal.Decimal),
		lines:    make(map[Key]int),
		periods:  make(map[period.Period]struct{}),
		accounts: make(map[string]struct{}),
	}
	for _, l := range lines {
		k := Key{Period: l.Period, Account: l.Account}
		b.sums[k] = b.sums[k].Add(l.Balance)
		b.lines[k]++
		b.periods[l.Period] = struct{}{}
		b.accounts[l.Account] = struct{}{}
	}
	return b
}

// Get returns the sum for (p, account) and whether any line matched.
func (b *Balances) Get(p period.Period, account string) (decimal.Decimal, bool) {
	v, ok := b.sums[Key{Period: p, Account: account}]
	return v, ok
}

// Value returns the sum for (p, account), zero when absent.
func (b *Balances) Value(p period.Period, account string) decimal.Decimal {
	v, _ := b.Get(p, account)
	return v
}

// Lines returns how many ledger lines contributed to (p, account).
func (b *Balances) Lines(p period.Period, account string) int {
	return b.lines[Key{Period: p, Account: account}]
}

// Has reports whether account appears in any period.
func (b *Balances) Has(account string) bool {
	_, ok := b.accounts[account]
	return ok
}

// Periods returns the sorted union of periods present in any account.
func (b *Balances) Periods() []period.Period {
	ps := make([]period.Period, 0, len(b.periods))
	for p := range b.periods {
		ps = append(ps, p)
	}
	period.Sort(ps)
	return ps
}

// Accounts returns the sorted names of every account present.
func (b *Balances) Accounts() []string {
	names := make([]string, 0, len(b.accounts))
	for a := range b.accounts {
		names = append(names, a)
	}
	sort.Strings(names)
	return names
}
