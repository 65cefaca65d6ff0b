package models

import "FinFrame/pkg/frame"

// MajorHolder is one line of the ownership breakdown, e.g.
// insidersPercentHeld = 0.0171.
type MajorHolder struct {
	Category string
	Value    float64
}

// Holder is an institutional or mutual fund position.
type Holder struct {
	Name         string
	Shares       *uint64
	DateReported int64
	PctHeld      *float64
	Value        *float64
}

type Holders []Holder

var holderSchema = frame.Schema[Holder]{
	{Name: "holder", Type: frame.String, Value: func(h Holder) interface{} { return h.Name }},
	{Name: "shares", Type: frame.Int64, Value: func(h Holder) interface{} { return h.Shares }},
	{Name: "date_reported", Type: frame.Int64, Value: func(h Holder) interface{} { return h.DateReported }},
	{Name: "pct_held", Type: frame.Float64, Value: func(h Holder) interface{} { return h.PctHeld }},
	{Name: "value", Type: frame.Float64, Value: func(h Holder) interface{} { return h.Value }},
}

func (hs Holders) Frame() (*frame.Table, error) { return holderSchema.Build(hs) }

// InsiderTransaction is a reported trade by an insider.
type InsiderTransaction struct {
	StartDate   int64
	Insider     string
	Position    string
	Transaction string
	Shares      *uint64
	Value       *float64
	Ownership   string
}

type InsiderTransactions []InsiderTransaction

var insiderTransactionSchema = frame.Schema[InsiderTransaction]{
	{Name: "start_date", Type: frame.Int64, Value: func(t InsiderTransaction) interface{} { return t.StartDate }},
	{Name: "insider", Type: frame.String, Value: func(t InsiderTransaction) interface{} { return t.Insider }},
	{Name: "position", Type: frame.String, Value: func(t InsiderTransaction) interface{} { return t.Position }},
	{Name: "transaction", Type: frame.String, Value: func(t InsiderTransaction) interface{} { return t.Transaction }},
	{Name: "shares", Type: frame.Int64, Value: func(t InsiderTransaction) interface{} { return t.Shares }},
	{Name: "value", Type: frame.Float64, Value: func(t InsiderTransaction) interface{} { return t.Value }},
	{Name: "ownership", Type: frame.String, Value: func(t InsiderTransaction) interface{} { return t.Ownership }},
}

func (ts InsiderTransactions) Frame() (*frame.Table, error) {
	return insiderTransactionSchema.Build(ts)
}

// InsiderRosterHolder is a current insider and their latest activity.
type InsiderRosterHolder struct {
	Name                  string
	Position              string
	MostRecentTransaction string
	LatestTransactionDate *int64
	SharesOwnedDirectly   *uint64
}

type InsiderRoster []InsiderRosterHolder

var insiderRosterSchema = frame.Schema[InsiderRosterHolder]{
	{Name: "name", Type: frame.String, Value: func(h InsiderRosterHolder) interface{} { return h.Name }},
	{Name: "position", Type: frame.String, Value: func(h InsiderRosterHolder) interface{} { return h.Position }},
	{Name: "most_recent_transaction", Type: frame.String, Value: func(h InsiderRosterHolder) interface{} { return h.MostRecentTransaction }},
	{Name: "latest_transaction_date", Type: frame.Int64, Value: func(h InsiderRosterHolder) interface{} { return h.LatestTransactionDate }},
	{Name: "shares_owned_directly", Type: frame.Int64, Value: func(h InsiderRosterHolder) interface{} { return h.SharesOwnedDirectly }},
}

func (r InsiderRoster) Frame() (*frame.Table, error) { return insiderRosterSchema.Build(r) }
