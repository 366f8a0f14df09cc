package models

// LineItemKey identifies one financial-statement fact tracked across fiscal years.
type LineItemKey string

const (
	Revenue            LineItemKey = "revenue"
	CostOfRevenue      LineItemKey = "cost_of_revenue"
	GrossProfit        LineItemKey = "gross_profit"
	OperatingExpenses  LineItemKey = "operating_expenses"
	OperatingIncome    LineItemKey = "operating_income"
	InterestExpense    LineItemKey = "interest_expense"
	TaxExpense         LineItemKey = "tax_expense"
	NetIncome          LineItemKey = "net_income"
	TotalAssets        LineItemKey = "total_assets"
	TotalLiabilities   LineItemKey = "total_liabilities"
	ShareholdersEquity LineItemKey = "shareholders_equity"
)

// LineItem pairs a vocabulary key with its human-readable spreadsheet label.
type LineItem struct {
	Key   LineItemKey
	Label string
}

// LineItems is the fixed line-item vocabulary in statement order. The renderer
// emits exactly one row per entry; values under any other key are dropped.
var LineItems = []LineItem{
	{Revenue, "Revenue"},
	{CostOfRevenue, "Cost of Revenue"},
	{GrossProfit, "Gross Profit"},
	{OperatingExpenses, "Operating Expenses"},
	{OperatingIncome, "Operating Income"},
	{InterestExpense, "Interest Expense"},
	{TaxExpense, "Tax Expense"},
	{NetIncome, "Net Income"},
	{TotalAssets, "Total Assets"},
	{TotalLiabilities, "Total Liabilities"},
	{ShareholdersEquity, "Shareholders' Equity"},
}

// FinancialRecord is the structured result of one extraction run. It is built
// fresh per request and handed straight to the renderer; nothing mutates it
// afterwards and nothing persists it.
//
// FinancialData maps line-item key -> fiscal year -> value. A key or year with
// no discovered value is simply absent; absence IS the "missing data" signal.
type FinancialRecord struct {
	CompanyName   string                        `json:"company_name"`
	FiscalYears   []string                      `json:"fiscal_years"`
	FinancialData map[string]map[string]float64 `json:"financial_data"`
	Currency      string                        `json:"currency"`
	Units         string                        `json:"units"`
	Notes         []string                      `json:"notes"`
}

// Value looks up one line-item value; the second result reports presence.
func (r *FinancialRecord) Value(key LineItemKey, year string) (float64, bool) {
	byYear, ok := r.FinancialData[string(key)]
	if !ok {
		return 0, false
	}
	v, ok := byYear[year]
	return v, ok
}
