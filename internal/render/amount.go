package render

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amounts formats statement values for display. Money amounts use the
// currency's own formatter, or a thousands formatter ("12 K$") when the
// scale is 1000.
type Amounts struct {
	currency  *money.Currency
	scale     int
	thousands *money.Formatter
}

// NewAmounts returns an Amounts for an ISO 4217 currency code and a display
// scale of 1 or 1000.
func NewAmounts(currency string, scale int) (*Amounts, error) {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", currency)
	}
	if scale != 1 && scale != 1000 {
		return nil, fmt.Errorf("scale must be 1 or 1000, got %d", scale)
	}
	return &Amounts{
		currency:  cur,
		scale:     scale,
		thousands: money.NewFormatter(0, cur.Decimal, cur.Thousand, "K"+cur.Grapheme, "1 $"),
	}, nil
}

// Money formats an amount in ledger currency units.
func (a *Amounts) Money(v decimal.Decimal) string {
	if a.scale == 1000 {
		return a.thousands.Format(v.Shift(-3).Round(0).IntPart())
	}
	minor := v.Shift(int32(a.currency.Fraction)).Round(0)
	return a.currency.Formatter().Format(minor.IntPart())
}

// Percent formats a percentage with one decimal.
func (a *Amounts) Percent(v decimal.Decimal) string {
	return v.StringFixed(1) + "%"
}

// Days formats a day count with one decimal.
func (a *Amounts) Days(v decimal.Decimal) string {
	return v.StringFixed(1)
}

// Ratio formats a plain ratio with two decimals.
func (a *Amounts) Ratio(v decimal.Decimal) string {
	return v.StringFixed(2)
}
