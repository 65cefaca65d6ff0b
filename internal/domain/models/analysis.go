package models

import (
	"time"

	"FinFrame/pkg/frame"
)

// RecommendationRow counts analyst ratings for one period ("0m", "-1m", ...).
type RecommendationRow struct {
	Period     string
	StrongBuy  uint32
	Buy        uint32
	Hold       uint32
	Sell       uint32
	StrongSell uint32
}

type Recommendations []RecommendationRow

var recommendationSchema = frame.Schema[RecommendationRow]{
	{Name: "period", Type: frame.String, Value: func(r RecommendationRow) interface{} { return r.Period }},
	{Name: "strong_buy", Type: frame.Int64, Value: func(r RecommendationRow) interface{} { return r.StrongBuy }},
	{Name: "buy", Type: frame.Int64, Value: func(r RecommendationRow) interface{} { return r.Buy }},
	{Name: "hold", Type: frame.Int64, Value: func(r RecommendationRow) interface{} { return r.Hold }},
	{Name: "sell", Type: frame.Int64, Value: func(r RecommendationRow) interface{} { return r.Sell }},
	{Name: "strong_sell", Type: frame.Int64, Value: func(r RecommendationRow) interface{} { return r.StrongSell }},
}

func (rs Recommendations) Frame() (*frame.Table, error) { return recommendationSchema.Build(rs) }

// UpgradeDowngrade is one analyst rating change.
type UpgradeDowngrade struct {
	Timestamp int64
	Firm      string
	ToGrade   string
	FromGrade string
	Action    string
}

type UpgradesDowngrades []UpgradeDowngrade

var upgradeDowngradeSchema = frame.Schema[UpgradeDowngrade]{
	{Name: "date", Type: frame.Int64, Value: func(u UpgradeDowngrade) interface{} { return u.Timestamp }},
	{Name: "firm", Type: frame.String, Value: func(u UpgradeDowngrade) interface{} { return u.Firm }},
	{Name: "to_grade", Type: frame.String, Value: func(u UpgradeDowngrade) interface{} { return u.ToGrade }},
	{Name: "from_grade", Type: frame.String, Value: func(u UpgradeDowngrade) interface{} { return u.FromGrade }},
	{Name: "action", Type: frame.String, Value: func(u UpgradeDowngrade) interface{} { return u.Action }},
}

func (us UpgradesDowngrades) Frame() (*frame.Table, error) { return upgradeDowngradeSchema.Build(us) }

// EarningsYear is annual revenue and earnings.
type EarningsYear struct {
	Year     int
	Revenue  *float64
	Earnings *float64
}

// EarningsQuarter is quarterly revenue and earnings, Period like "2Q2024".
type EarningsQuarter struct {
	Period   string
	Revenue  *float64
	Earnings *float64
}

// EarningsQuarterEPS is actual vs estimated EPS for a quarter.
type EarningsQuarterEPS struct {
	Period   string
	Actual   *float64
	Estimate *float64
}

type Earnings struct {
	Yearly       []EarningsYear
	Quarterly    []EarningsQuarter
	QuarterlyEPS []EarningsQuarterEPS
}

// Calendar holds upcoming corporate event dates (UTC calendar days).
type Calendar struct {
	EarningsDates       []time.Time
	ExDividendDate      *time.Time
	DividendPaymentDate *time.Time
}
