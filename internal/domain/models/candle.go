package models

import "FinFrame/pkg/frame"

// Candle is an OHLCV record. AdjClose and Volume are absent for some
// instruments and intraday intervals.
type Candle struct {
	Timestamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	AdjClose  *float64
	Volume    *int64
}

// Candles is a price history in provider order.
type Candles []Candle

var candleSchema = frame.Schema[Candle]{
	{Name: "date", Type: frame.Int64, Value: func(c Candle) interface{} { return c.Timestamp }},
	{Name: "open", Type: frame.Float64, Value: func(c Candle) interface{} { return c.Open }},
	{Name: "high", Type: frame.Float64, Value: func(c Candle) interface{} { return c.High }},
	{Name: "low", Type: frame.Float64, Value: func(c Candle) interface{} { return c.Low }},
	{Name: "close", Type: frame.Float64, Value: func(c Candle) interface{} { return c.Close }},
	{Name: "adj_close", Type: frame.Float64, Value: func(c Candle) interface{} { return c.AdjClose }},
	{Name: "volume", Type: frame.Int64, Value: func(c Candle) interface{} { return c.Volume }},
}

func (cs Candles) Frame() (*frame.Table, error) { return candleSchema.Build(cs) }
