package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts into financial statement buckets.
type AccountType string

const (
	AccountTypeAsset           AccountType = "asset"
	AccountTypeLiability       AccountType = "liability"
	AccountTypeEquity          AccountType = "equity"
	AccountTypeRevenue         AccountType = "revenue"
	AccountTypeExpense         AccountType = "expense"
	AccountTypeFinancialIncome AccountType = "financial_income"
	AccountTypeFinancialCost   AccountType = "financial_cost"
)

// CreditNormal reports whether balances of this type are stored as negative
// (credit) amounts in the ledger and must be negated for statements.
func (t AccountType) CreditNormal() bool {
	switch t {
	case AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeFinancialIncome:
		return true
	default:
		return false
	}
}

// Balance reports whether the type belongs on the balance sheet.
func (t AccountType) Balance() bool {
	return t == AccountTypeAsset || t == AccountTypeLiability || t == AccountTypeEquity
}

// Account represents a row in the chart of accounts.
type Account struct {
	ID          int
	Name        string // canonical lowercase ledger name
	Type        AccountType
	Synthetic   bool // derived by the engine, never posted in the ledger
	Description string
}

// Statement converts a ledger balance (debit - credit) into the
// statement-positive amount for this account.
func (a Account) Statement(balance decimal.Decimal) decimal.Decimal {
	if a.Type.CreditNormal() {
		return balance.Neg()
	}
	return balance
}
