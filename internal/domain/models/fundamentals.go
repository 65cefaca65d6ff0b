package models

import "FinFrame/pkg/frame"

// Frequency selects annual or quarterly statements.
type Frequency int

const (
	Annual Frequency = iota
	Quarterly
)

func (f Frequency) String() string {
	if f == Quarterly {
		return "quarterly"
	}
	return "annual"
}

type IncomeStatementRow struct {
	PeriodEnd       int64
	TotalRevenue    *float64
	GrossProfit     *float64
	OperatingIncome *float64
	NetIncome       *float64
}

type IncomeStatement []IncomeStatementRow

var incomeStatementSchema = frame.Schema[IncomeStatementRow]{
	{Name: "period_end", Type: frame.Int64, Value: func(r IncomeStatementRow) interface{} { return r.PeriodEnd }},
	{Name: "total_revenue", Type: frame.Float64, Value: func(r IncomeStatementRow) interface{} { return r.TotalRevenue }},
	{Name: "gross_profit", Type: frame.Float64, Value: func(r IncomeStatementRow) interface{} { return r.GrossProfit }},
	{Name: "operating_income", Type: frame.Float64, Value: func(r IncomeStatementRow) interface{} { return r.OperatingIncome }},
	{Name: "net_income", Type: frame.Float64, Value: func(r IncomeStatementRow) interface{} { return r.NetIncome }},
}

func (s IncomeStatement) Frame() (*frame.Table, error) { return incomeStatementSchema.Build(s) }

type BalanceSheetRow struct {
	PeriodEnd        int64
	TotalAssets      *float64
	TotalLiabilities *float64
	TotalEquity      *float64
	Cash             *float64
	LongTermDebt     *float64
}

type BalanceSheet []BalanceSheetRow

var balanceSheetSchema = frame.Schema[BalanceSheetRow]{
	{Name: "period_end", Type: frame.Int64, Value: func(r BalanceSheetRow) interface{} { return r.PeriodEnd }},
	{Name: "total_assets", Type: frame.Float64, Value: func(r BalanceSheetRow) interface{} { return r.TotalAssets }},
	{Name: "total_liabilities", Type: frame.Float64, Value: func(r BalanceSheetRow) interface{} { return r.TotalLiabilities }},
	{Name: "total_equity", Type: frame.Float64, Value: func(r BalanceSheetRow) interface{} { return r.TotalEquity }},
	{Name: "cash", Type: frame.Float64, Value: func(r BalanceSheetRow) interface{} { return r.Cash }},
	{Name: "long_term_debt", Type: frame.Float64, Value: func(r BalanceSheetRow) interface{} { return r.LongTermDebt }},
}

func (s BalanceSheet) Frame() (*frame.Table, error) { return balanceSheetSchema.Build(s) }

type CashflowRow struct {
	PeriodEnd           int64
	OperatingCashflow   *float64
	CapitalExpenditures *float64
	FreeCashflow        *float64
	NetIncome           *float64
}

type Cashflow []CashflowRow

var cashflowSchema = frame.Schema[CashflowRow]{
	{Name: "period_end", Type: frame.Int64, Value: func(r CashflowRow) interface{} { return r.PeriodEnd }},
	{Name: "operating_cashflow", Type: frame.Float64, Value: func(r CashflowRow) interface{} { return r.OperatingCashflow }},
	{Name: "capital_expenditures", Type: frame.Float64, Value: func(r CashflowRow) interface{} { return r.CapitalExpenditures }},
	{Name: "free_cashflow", Type: frame.Float64, Value: func(r CashflowRow) interface{} { return r.FreeCashflow }},
	{Name: "net_income", Type: frame.Float64, Value: func(r CashflowRow) interface{} { return r.NetIncome }},
}

func (s Cashflow) Frame() (*frame.Table, error) { return cashflowSchema.Build(s) }
