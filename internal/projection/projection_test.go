package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinFrame/internal/domain/models"
)

func TestActionsOneRowPerEventInSourceOrder(t *testing.T) {
	events := []models.Action{
		models.Split{Timestamp: 300, Numerator: 4, Denominator: 1},
		models.Dividend{Timestamp: 100, Amount: 0.24},
		models.CapitalGain{Timestamp: 100, Amount: 1.5},
		models.Dividend{Timestamp: 300, Amount: 0.25},
		models.Split{Timestamp: 300, Numerator: 3, Denominator: 2},
		models.CapitalGain{Timestamp: 400, Amount: 0.1},
		models.Dividend{Timestamp: 200, Amount: 0.24},
	}

	tbl, err := Actions(events)
	require.NoError(t, err)
	require.Equal(t, ActionColumns, tbl.Names())
	require.Equal(t, 5, tbl.Len())

	want := [][]interface{}{
		{int64(300), nil, 4.0},
		{int64(100), 0.24, nil},
		{int64(300), 0.25, nil},
		{int64(300), nil, 1.5},
		{int64(200), 0.24, nil},
	}
	for i, row := range want {
		assert.Equal(t, row, tbl.Row(i), "row %d", i)
	}
}

func TestActionsExactlyOneValuePerRow(t *testing.T) {
	var events []models.Action
	dividends, splits := 0, 0
	for i := 0; i < 50; i++ {
		switch i % 3 {
		case 0:
			events = append(events, models.Dividend{Timestamp: int64(i), Amount: float64(i)})
			dividends++
		case 1:
			events = append(events, models.Split{Timestamp: int64(i), Numerator: 2, Denominator: 1})
			splits++
		default:
			events = append(events, models.CapitalGain{Timestamp: int64(i), Amount: 1})
		}
	}

	tbl, err := Actions(events)
	require.NoError(t, err)
	require.Equal(t, dividends+splits, tbl.Len())

	div, _ := tbl.Column("dividends")
	spl, _ := tbl.Column("stock_splits")
	for i := 0; i < tbl.Len(); i++ {
		assert.NotEqual(t, div.IsNull(i), spl.IsNull(i), "row %d", i)
	}
	assert.Equal(t, splits, div.NullCount())
	assert.Equal(t, dividends, spl.NullCount())
}

func TestActionsEmptyAndCapitalGainOnly(t *testing.T) {
	tbl, err := Actions(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 3, tbl.Width())

	tbl, err = Actions([]models.Action{models.CapitalGain{Timestamp: 1, Amount: 2}})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestActionsRejectsZeroDenominator(t *testing.T) {
	_, err := Actions([]models.Action{models.Split{Timestamp: 1, Numerator: 1}})
	assert.Error(t, err)
}

func TestSplitRatios(t *testing.T) {
	cases := []struct {
		n, d uint32
		want float64
	}{
		{1, 1, 1.0},
		{3, 2, 1.5},
		{1, 1000, 0.001},
		{7, 1, 7.0},
	}
	splits := make([]models.Split, len(cases))
	for i, c := range cases {
		splits[i] = models.Split{Timestamp: int64(i), Numerator: c.n, Denominator: c.d}
	}

	tbl, err := Splits(splits)
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "stock_splits"}, tbl.Names())
	col, _ := tbl.Column("stock_splits")
	for i, c := range cases {
		assert.Equal(t, float64(c.n)/float64(c.d), col.Value(i))
		assert.InDelta(t, c.want, col.Value(i), 1e-15)
	}

	_, err = Splits([]models.Split{{Timestamp: 1, Numerator: 2}})
	assert.Error(t, err)
}

func TestDividendsAndCapitalGains(t *testing.T) {
	tbl, err := Dividends([]models.Dividend{{Timestamp: 10, Amount: 0.5}, {Timestamp: 20, Amount: 0.52}})
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "dividends"}, tbl.Names())
	assert.Equal(t, []interface{}{int64(20), 0.52}, tbl.Row(1))

	tbl, err = CapitalGains([]models.CapitalGain{{Timestamp: 30, Amount: 1.25}})
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "capital_gains"}, tbl.Names())
	assert.Equal(t, []interface{}{int64(30), 1.25}, tbl.Row(0))
}

func TestMajorHolders(t *testing.T) {
	tbl, err := MajorHolders([]models.MajorHolder{
		{Category: "insidersPercentHeld", Value: 0.0171},
		{Category: "institutionsCount", Value: 6543},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Breakdown", "Value"}, tbl.Names())
	assert.Equal(t, []interface{}{"insidersPercentHeld", "0.0171"}, tbl.Row(0))
	assert.Equal(t, []interface{}{"institutionsCount", "6543"}, tbl.Row(1))
}
