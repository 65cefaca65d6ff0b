package projection

import (
	"fmt"

	"FinFrame/internal/domain/models"
	"FinFrame/pkg/frame"
)

// ActionColumns is the column order of the merged actions table.
var ActionColumns = []string{"date", "dividends", "stock_splits"}

// actionRows is an append-only builder: one row per accepted event, exactly
// one of the two value columns set.
type actionRows struct {
	dates     []int64
	dividends []*float64
	splits    []*float64
}

func (b *actionRows) dividend(ts int64, amount float64) {
	b.dates = append(b.dates, ts)
	b.dividends = append(b.dividends, &amount)
	b.splits = append(b.splits, nil)
}

func (b *actionRows) split(ts int64, ratio float64) {
	b.dates = append(b.dates, ts)
	b.dividends = append(b.dividends, nil)
	b.splits = append(b.splits, &ratio)
}

// Actions aligns dividends and splits into one table in source order.
// Same-timestamp events stay separate rows; nothing is sorted or merged.
// Capital gains are skipped here and served by CapitalGains instead.
func Actions(events []models.Action) (*frame.Table, error) {
	b := &actionRows{
		dates:     make([]int64, 0, len(events)),
		dividends: make([]*float64, 0, len(events)),
		splits:    make([]*float64, 0, len(events)),
	}
	for i, ev := range events {
		switch e := ev.(type) {
		case models.Dividend:
			b.dividend(e.Timestamp, e.Amount)
		case models.Split:
			if e.Denominator == 0 {
				return nil, fmt.Errorf("event %d: split at %d has zero denominator", i, e.Timestamp)
			}
			b.split(e.Timestamp, e.Ratio())
		case models.CapitalGain:
		default:
			return nil, fmt.Errorf("event %d: unsupported action %T", i, ev)
		}
	}
	return frame.New(
		frame.Int64s(ActionColumns[0], b.dates),
		frame.NullableFloat64s(ActionColumns[1], b.dividends),
		frame.NullableFloat64s(ActionColumns[2], b.splits),
	)
}
