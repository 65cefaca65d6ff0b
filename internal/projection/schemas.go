// Package projection declares the fixed table schemas for collections that
// do not carry their own projection, and the corporate action merge.
//
// Column names, dtypes and order here are an external contract.
package projection

import (
	"fmt"
	"strconv"

	"FinFrame/internal/domain/models"
	"FinFrame/pkg/frame"
)

var DividendSchema = frame.Schema[models.Dividend]{
	{Name: "date", Type: frame.Int64, Value: func(d models.Dividend) interface{} { return d.Timestamp }},
	{Name: "dividends", Type: frame.Float64, Value: func(d models.Dividend) interface{} { return d.Amount }},
}

var SplitSchema = frame.Schema[models.Split]{
	{Name: "date", Type: frame.Int64, Value: func(s models.Split) interface{} { return s.Timestamp }},
	{Name: "stock_splits", Type: frame.Float64, Value: func(s models.Split) interface{} { return s.Ratio() }},
}

var CapitalGainSchema = frame.Schema[models.CapitalGain]{
	{Name: "date", Type: frame.Int64, Value: func(g models.CapitalGain) interface{} { return g.Timestamp }},
	{Name: "capital_gains", Type: frame.Float64, Value: func(g models.CapitalGain) interface{} { return g.Amount }},
}

// MajorHolderSchema stringifies the value with the shortest exact decimal form.
var MajorHolderSchema = frame.Schema[models.MajorHolder]{
	{Name: "Breakdown", Type: frame.String, Value: func(h models.MajorHolder) interface{} { return h.Category }},
	{Name: "Value", Type: frame.String, Value: func(h models.MajorHolder) interface{} {
		return strconv.FormatFloat(h.Value, 'f', -1, 64)
	}},
}

func Dividends(ds []models.Dividend) (*frame.Table, error)       { return DividendSchema.Build(ds) }
func CapitalGains(gs []models.CapitalGain) (*frame.Table, error) { return CapitalGainSchema.Build(gs) }
func MajorHolders(hs []models.MajorHolder) (*frame.Table, error) { return MajorHolderSchema.Build(hs) }

// Splits rejects zero denominators instead of emitting an infinite ratio.
func Splits(ss []models.Split) (*frame.Table, error) {
	for i, s := range ss {
		if s.Denominator == 0 {
			return nil, fmt.Errorf("split %d at %d has zero denominator", i, s.Timestamp)
		}
	}
	return SplitSchema.Build(ss)
}
