package usecase

import (
	"fmt"
	"sort"

	"FinFrame/internal/domain/errs"
	"FinFrame/pkg/frame"
)

var tableOps = map[string]func(*Ticker) (*frame.Table, error){
	"dividends":               (*Ticker).Dividends,
	"splits":                  (*Ticker).Splits,
	"actions":                 (*Ticker).Actions,
	"capital_gains":           (*Ticker).CapitalGains,
	"income_stmt":             (*Ticker).IncomeStmt,
	"quarterly_income_stmt":   (*Ticker).QuarterlyIncomeStmt,
	"balance_sheet":           (*Ticker).BalanceSheet,
	"quarterly_balance_sheet": (*Ticker).QuarterlyBalanceSheet,
	"cashflow":                (*Ticker).Cashflow,
	"quarterly_cashflow":      (*Ticker).QuarterlyCashflow,
	"recommendations":         (*Ticker).Recommendations,
	"upgrades_downgrades":     (*Ticker).UpgradesDowngrades,
	"major_holders":           (*Ticker).MajorHolders,
	"institutional_holders":   (*Ticker).InstitutionalHolders,
	"mutualfund_holders":      (*Ticker).MutualFundHolders,
	"insider_transactions":    (*Ticker).InsiderTransactions,
	"insider_roster_holders":  (*Ticker).InsiderRosterHolders,
}

// TableNames lists the parameterless table operations, sorted.
func TableNames() []string {
	names := make([]string, 0, len(tableOps))
	for name := range tableOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table runs the parameterless table operation called name.
func (t *Ticker) Table(name string) (*frame.Table, error) {
	op, ok := tableOps[name]
	if !ok {
		return nil, errs.InputFormat("table", fmt.Errorf("unknown table %q", name))
	}
	return op(t)
}
