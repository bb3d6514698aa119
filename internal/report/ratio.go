package report

import (
	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/accounts"
	"github.com/aifina/aifina/internal/aggregate"
	"github.com/aifina/aifina/internal/period"
)

var (
	hundred   = decimal.NewFromInt(100)
	monthDays = decimal.NewFromInt(30)
	chart     = accounts.Default()
)

// safeDiv returns num / den, or zero when den is zero.
func safeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// percent returns num / den * 100, or zero when den is zero.
func percent(num, den decimal.Decimal) decimal.Decimal {
	return safeDiv(num, den).Mul(hundred)
}

// days returns num / den * 30, or zero when den is zero.
func days(num, den decimal.Decimal) decimal.Decimal {
	return safeDiv(num, den).Mul(monthDays)
}

// statement returns the zero-filled aggregate of account in p, converted
// to its statement sign by the account classifier.
func statement(b *aggregate.Balances, p period.Period, account string) decimal.Decimal {
	v := b.Value(p, account)
	acct, ok := chart.Classify(account)
	if !ok {
		return v
	}
	return acct.Statement(v)
}

func sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
