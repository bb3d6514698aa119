package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/model"
	"github.com/aifina/aifina/internal/period"
)

// Rule names a line-level check.
type Rule string

const (
	RuleBalance   Rule = "balance"   // Balance == Debit - Credit
	RulePeriod    Rule = "period"    // Period derived from Date
	RuleSign      Rule = "sign"      // Debit and Credit are non-negative
	RulePrecision Rule = "precision" // at most 2 decimal places
	RuleAccount   Rule = "account"   // non-empty account name
)

// ValidationError describes a single check failure on a ledger line.
type ValidationError struct {
	Rule        Rule
	Line        int // 1-based position in the input slice
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [line %d]: %s", e.Rule, e.Line, e.Description)
}

// ValidateLines checks the normalized-line invariants. Violations are
// reported, not fixed: the engine trusts each line as given.
func ValidateLines(lines []model.LedgerLine) []ValidationError {
	var errs []ValidationError
	hundred := decimal.NewFromInt(100)

	for i, line := range lines {
		n := i + 1

		if !line.Balance.Equal(line.Debit.Sub(line.Credit)) {
			errs = append(errs, ValidationError{
				Rule:        RuleBalance,
				Line:        n,
				Description: fmt.Sprintf("balance %s != debit %s - credit %s", line.Balance, line.Debit, line.Credit),
			})
		}

		if want := period.FromDate(line.Date); line.Period != want {
			errs = append(errs, ValidationError{
				Rule:        RulePeriod,
				Line:        n,
				Description: fmt.Sprintf("period %s does not contain date %s", line.Period, line.Date.Format(dateFormat)),
			})
		}

		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Rule:        RuleSign,
				Line:        n,
				Description: fmt.Sprintf("negative amount (debit %s, credit %s)", line.Debit, line.Credit),
			})
		}

		for _, amt := range []decimal.Decimal{line.Debit, line.Credit} {
			if !amt.Mul(hundred).Equal(amt.Mul(hundred).Floor()) {
				errs = append(errs, ValidationError{
					Rule:        RulePrecision,
					Line:        n,
					Description: fmt.Sprintf("amount %s has more than 2 decimal places", amt),
				})
			}
		}

		if line.Account == "" {
			errs = append(errs, ValidationError{
				Rule:        RuleAccount,
				Line:        n,
				Description: "empty account name",
			})
		}
	}

	return errs
}
