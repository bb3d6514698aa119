package accounts

import "github.com/aifina/aifina/internal/model"

// Canonical ledger account names.
const (
	Cash             = "cash and cash equivalents"
	Receivables      = "accounts receivable"
	Inventory        = "raw material inventory"
	PPE              = "property, plant, and equipment (ppe)"
	Intangibles      = "intangible assets"
	Payables         = "accounts payable"
	ShortTermDebt    = "short-term debt"
	WagesPayable     = "wages payables"
	ShareCapital     = "share capital"
	RetainedEarnings = "retained earnings"
	OngoingEarnings  = "ongoing earnings"
	SalesRevenue     = "sales revenue"
	COGS             = "cost of goods sold"
	Personnel        = "personnel"
	Facility         = "facility"
	Administration   = "administration"
	FinancialIncome  = "financial income"
	FinancialCost    = "financial cost"
)

// aliases maps alternative spellings seen in exports to canonical names.
var aliases = map[string]string{
	"ppe":                                PPE,
	"property, plant and equipment":      PPE,
	"property, plant, and equipment":     PPE,
	"property plant and equipment (ppe)": PPE,
	"inventory":                          Inventory,
	"wages payable":                      WagesPayable,
	"short term debt":                    ShortTermDebt,
	"cogs":                               COGS,
}

// DefaultChart returns the statement chart of accounts. Membership is
// exhaustive: any other account name is unclassified.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: 1010, Name: Cash, Type: model.AccountTypeAsset, Description: "Cash and cash equivalents"},
		{ID: 1200, Name: Receivables, Type: model.AccountTypeAsset, Description: "Trade receivables"},
		{ID: 1300, Name: Inventory, Type: model.AccountTypeAsset, Description: "Raw material inventory"},
		{ID: 1500, Name: PPE, Type: model.AccountTypeAsset, Description: "Property, plant and equipment"},
		{ID: 1600, Name: Intangibles, Type: model.AccountTypeAsset, Description: "Intangible assets"},
		{ID: 2010, Name: Payables, Type: model.AccountTypeLiability, Description: "Trade payables"},
		{ID: 2100, Name: ShortTermDebt, Type: model.AccountTypeLiability, Description: "Short-term borrowings"},
		{ID: 2200, Name: WagesPayable, Type: model.AccountTypeLiability, Description: "Wages owed to staff"},
		{ID: 3010, Name: ShareCapital, Type: model.AccountTypeEquity, Description: "Share capital"},
		{ID: 3100, Name: RetainedEarnings, Type: model.AccountTypeEquity, Description: "Retained earnings"},
		{ID: 3900, Name: OngoingEarnings, Type: model.AccountTypeEquity, Synthetic: true, Description: "Cumulative net result"},
		{ID: 4010, Name: SalesRevenue, Type: model.AccountTypeRevenue, Description: "Sales revenue"},
		{ID: 5010, Name: COGS, Type: model.AccountTypeExpense, Description: "Cost of goods sold"},
		{ID: 6010, Name: Personnel, Type: model.AccountTypeExpense, Description: "Personnel expenses"},
		{ID: 6020, Name: Facility, Type: model.AccountTypeExpense, Description: "Facility expenses"},
		{ID: 6030, Name: Administration, Type: model.AccountTypeExpense, Description: "Administration expenses"},
		{ID: 7010, Name: FinancialIncome, Type: model.AccountTypeFinancialIncome, Description: "Interest and other financial income"},
		{ID: 7510, Name: FinancialCost, Type: model.AccountTypeFinancialCost, Description: "Interest and other financial cost"},
	}
}
