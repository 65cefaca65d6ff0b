package models

import "FinFrame/pkg/frame"

// OptionContract is one call or put line of an option chain.
type OptionContract struct {
	ContractSymbol    string
	Strike            float64
	Currency          string
	LastPrice         *float64
	Bid               *float64
	Ask               *float64
	Volume            *uint64
	OpenInterest      *uint64
	ImpliedVolatility *float64
	InTheMoney        bool
	Expiration        int64
	LastTradeDate     *int64
}

type OptionContracts []OptionContract

var optionContractSchema = frame.Schema[OptionContract]{
	{Name: "contract_symbol", Type: frame.String, Value: func(o OptionContract) interface{} { return o.ContractSymbol }},
	{Name: "strike", Type: frame.Float64, Value: func(o OptionContract) interface{} { return o.Strike }},
	{Name: "currency", Type: frame.String, Value: func(o OptionContract) interface{} { return o.Currency }},
	{Name: "last_price", Type: frame.Float64, Value: func(o OptionContract) interface{} { return o.LastPrice }},
	{Name: "bid", Type: frame.Float64, Value: func(o OptionContract) interface{} { return o.Bid }},
	{Name: "ask", Type: frame.Float64, Value: func(o OptionContract) interface{} { return o.Ask }},
	{Name: "volume", Type: frame.Int64, Value: func(o OptionContract) interface{} { return o.Volume }},
	{Name: "open_interest", Type: frame.Int64, Value: func(o OptionContract) interface{} { return o.OpenInterest }},
	{Name: "implied_volatility", Type: frame.Float64, Value: func(o OptionContract) interface{} { return o.ImpliedVolatility }},
	{Name: "in_the_money", Type: frame.Bool, Value: func(o OptionContract) interface{} { return o.InTheMoney }},
	{Name: "expiration", Type: frame.Int64, Value: func(o OptionContract) interface{} { return o.Expiration }},
	{Name: "last_trade_date", Type: frame.Int64, Value: func(o OptionContract) interface{} { return o.LastTradeDate }},
}

func (cs OptionContracts) Frame() (*frame.Table, error) { return optionContractSchema.Build(cs) }

// OptionChain is the calls and puts for a single expiration.
type OptionChain struct {
	Expiration int64
	Calls      OptionContracts
	Puts       OptionContracts
}
