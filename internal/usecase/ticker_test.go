package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"FinFrame/internal/bridge"
	"FinFrame/internal/domain/errs"
	"FinFrame/internal/domain/models"
	"FinFrame/internal/domain/repository"
	"FinFrame/internal/domain/repository/mocks"
	"FinFrame/internal/usecase"
)

func ptr[T any](v T) *T { return &v }

// newTicker wires a ticker whose every scope hands out the same mock.
func newTicker(t *testing.T, symbol string) (*usecase.Ticker, *mocks.MockMarketData) {
	t.Helper()
	ctrl := gomock.NewController(t)
	md := mocks.NewMockMarketData(ctrl)
	exec := bridge.NewPerCall(func() (repository.MarketData, error) { return md, nil }, nil, nil)
	return usecase.NewTicker(symbol, exec), md
}

func TestTickerString(t *testing.T) {
	t.Parallel()

	tk, _ := newTicker(t, "AAPL")
	assert.Equal(t, "Ticker('AAPL')", tk.String())
	assert.Equal(t, "AAPL", tk.Symbol())
}

func TestHistoryMapsVocabulary(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "MSFT")
	md.EXPECT().
		History(gomock.Any(), "MSFT", repository.HistoryRequest{
			Range:      repository.RangeY1,
			Interval:   repository.IntervalH1,
			AutoAdjust: true,
			Actions:    true,
		}).
		Return(models.Candles{
			{Timestamp: 1, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: ptr(int64(100))},
			{Timestamp: 2, Open: 1.5, High: 2, Low: 1, Close: 1.8},
		}, nil)

	p := usecase.DefaultHistoryParams()
	p.Period, p.Interval = "1y", "60m"
	tbl, err := tk.History(p)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"date", "open", "high", "low", "close", "adj_close", "volume"}, tbl.Names())

	vol, ok := tbl.Column("volume")
	require.True(t, ok)
	assert.True(t, vol.IsNull(1))
}

func TestHistoryDefaultsAndFallbacks(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "MSFT")
	want := repository.HistoryRequest{Range: repository.RangeM1, Interval: repository.IntervalD1}
	md.EXPECT().History(gomock.Any(), "MSFT", want).Return(nil, nil).Times(2)

	tbl, err := tk.History(usecase.HistoryParams{})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())

	_, err = tk.History(usecase.HistoryParams{Period: "1M", Interval: "1H", Start: "2024-01-01"})
	require.NoError(t, err)
}

func TestFetchErrorIsOpaque(t *testing.T) {
	t.Parallel()

	type clientErr struct{ error }
	tk, md := newTicker(t, "AAPL")
	md.EXPECT().Dividends(gomock.Any(), "AAPL").Return(nil, clientErr{errors.New("http 429")})

	_, err := tk.Dividends()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrFetch)
	assert.Contains(t, err.Error(), "http 429")

	var ce clientErr
	assert.False(t, errors.As(err, &ce))
}

func TestFactoryFailureSurfacesAsExecutionContext(t *testing.T) {
	t.Parallel()

	exec := bridge.NewPerCall(func() (repository.MarketData, error) {
		return nil, errors.New("no runtime")
	}, nil, nil)
	tk := usecase.NewTicker("AAPL", exec)

	_, err := tk.Splits()
	assert.ErrorIs(t, err, errs.ErrExecutionContext)
}

func TestSplitsZeroDenominatorIsTableConstruction(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().Splits(gomock.Any(), "AAPL").Return([]models.Split{{Timestamp: 1, Numerator: 2, Denominator: 0}}, nil)

	_, err := tk.Splits()
	assert.ErrorIs(t, err, errs.ErrTableConstruction)
}

func TestActionsAlignsEvents(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().Actions(gomock.Any(), "AAPL").Return([]models.Action{
		models.Dividend{Timestamp: 100, Amount: 0.24},
		models.CapitalGain{Timestamp: 150, Amount: 1},
		models.Split{Timestamp: 200, Numerator: 4, Denominator: 1},
	}, nil)

	tbl, err := tk.Actions()
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []interface{}{int64(100), 0.24, nil}, tbl.Row(0))
	assert.Equal(t, []interface{}{int64(200), nil, 4.0}, tbl.Row(1))
}

func TestInfoOmitsAbsentKeys(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().Info(gomock.Any(), "AAPL").Return(&models.Info{
		Name:     ptr("Apple Inc."),
		Last:     ptr(189.98),
		Volume:   ptr(uint64(51234567)),
		Currency: ptr("USD"),
	}, nil)

	info, err := tk.Info()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"symbol":              "AAPL",
		"shortName":           "Apple Inc.",
		"currency":            "USD",
		"regularMarketPrice":  "189.98",
		"regularMarketVolume": uint64(51234567),
	}, info)
}

func TestInfoNilSnapshotKeepsSymbol(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().Info(gomock.Any(), "AAPL").Return(nil, nil)

	info, err := tk.Info()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"symbol": "AAPL"}, info)
}

func TestFastInfo(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "SPY")
	md.EXPECT().FastInfo(gomock.Any(), "SPY").Return(&models.FastInfo{Exchange: ptr("PCX")}, nil)

	fi, err := tk.FastInfo()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"symbol": "SPY", "exchange": "PCX"}, fi)
}

func TestISIN(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	gomock.InOrder(
		md.EXPECT().ISIN(gomock.Any(), "AAPL").Return("US0378331005", nil),
		md.EXPECT().ISIN(gomock.Any(), "AAPL").Return("", nil),
	)

	isin, err := tk.ISIN()
	require.NoError(t, err)
	require.NotNil(t, isin)
	assert.Equal(t, "US0378331005", *isin)

	isin, err = tk.ISIN()
	require.NoError(t, err)
	assert.Nil(t, isin)
}

func TestStatementsPassFrequency(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().IncomeStatement(gomock.Any(), "AAPL", models.Annual).
		Return(models.IncomeStatement{{PeriodEnd: 1, NetIncome: ptr(1e9)}}, nil)
	md.EXPECT().BalanceSheet(gomock.Any(), "AAPL", models.Quarterly).Return(nil, nil)
	md.EXPECT().Cashflow(gomock.Any(), "AAPL", models.Quarterly).
		Return(models.Cashflow{{PeriodEnd: 1}, {PeriodEnd: 2}}, nil)

	tbl, err := tk.IncomeStmt()
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())

	tbl, err = tk.QuarterlyBalanceSheet()
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, "period_end", tbl.Names()[0])

	tbl, err = tk.QuarterlyCashflow()
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestEarningsCounts(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().Earnings(gomock.Any(), "AAPL").Return(&models.Earnings{
		Yearly:       make([]models.EarningsYear, 4),
		Quarterly:    make([]models.EarningsQuarter, 4),
		QuarterlyEPS: make([]models.EarningsQuarterEPS, 3),
	}, nil)

	e, err := tk.Earnings()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"symbol":              "AAPL",
		"yearly_count":        4,
		"quarterly_count":     4,
		"quarterly_eps_count": 3,
	}, e)
}

func TestCalendar(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}
	md.EXPECT().Calendar(gomock.Any(), "AAPL").Return(&models.Calendar{
		EarningsDates:  []time.Time{day("2024-07-25"), day("2024-07-29")},
		ExDividendDate: ptr(day("2024-05-10")),
	}, nil)

	cal, err := tk.Calendar()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"symbol":         "AAPL",
		"earningsDates":  []string{"2024-07-25", "2024-07-29"},
		"exDividendDate": "2024-05-10",
	}, cal)
}

func TestMajorHolders(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().MajorHolders(gomock.Any(), "AAPL").Return([]models.MajorHolder{
		{Category: "insidersPercentHeld", Value: 0.0171},
	}, nil)

	tbl, err := tk.MajorHolders()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"insidersPercentHeld", "0.0171"}, tbl.Row(0))
}

func TestOptionsFormatsInClientOrder(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().OptionExpirations(gomock.Any(), "AAPL").Return([]int64{1719532800, 1718928000}, nil)

	dates, err := tk.Options()
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-28", "2024-06-21"}, dates)
}

func TestOptionChainPassesMidnightUTC(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().OptionChain(gomock.Any(), "AAPL", ptr(int64(1718928000))).Return(&models.OptionChain{
		Expiration: 1718928000,
		Calls:      models.OptionContracts{{ContractSymbol: "AAPL240621C00190000", Strike: 190, Expiration: 1718928000}},
		Puts: models.OptionContracts{
			{ContractSymbol: "AAPL240621P00180000", Strike: 180, Expiration: 1718928000},
			{ContractSymbol: "AAPL240621P00185000", Strike: 185, Expiration: 1718928000},
		},
	}, nil)

	calls, puts, err := tk.OptionChain("2024-06-21")
	require.NoError(t, err)
	assert.Equal(t, 1, calls.Len())
	assert.Equal(t, 2, puts.Len())
}

func TestOptionChainEmptyDateLetsClientChoose(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().OptionChain(gomock.Any(), "AAPL", (*int64)(nil)).Return(&models.OptionChain{}, nil)

	calls, puts, err := tk.OptionChain("")
	require.NoError(t, err)
	assert.Equal(t, 0, calls.Len())
	assert.Equal(t, 0, puts.Len())
}

func TestOptionChainRejectsMalformedDateBeforeFetch(t *testing.T) {
	t.Parallel()

	for _, date := range []string{"2024/06/21", "06-21-2024", "2024-6-21", "tomorrow"} {
		tk, _ := newTicker(t, "AAPL")
		// No expectations: any client call fails the test.
		_, _, err := tk.OptionChain(date)
		require.Error(t, err, date)
		assert.ErrorIs(t, err, errs.ErrInputFormat)
		assert.Contains(t, err.Error(), "invalid date format")
	}
}

func TestCallsAreIsolated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	var built int
	exec := bridge.NewPerCall(func() (repository.MarketData, error) {
		built++
		md := mocks.NewMockMarketData(ctrl)
		if built == 1 {
			md.EXPECT().Recommendations(gomock.Any(), "AAPL").Return(nil, errors.New("boom"))
		} else {
			md.EXPECT().Recommendations(gomock.Any(), "AAPL").
				Return(models.Recommendations{{Period: "0m", Buy: 20}}, nil)
		}
		return md, nil
	}, nil, nil)
	tk := usecase.NewTicker("AAPL", exec)

	_, err := tk.Recommendations()
	assert.ErrorIs(t, err, errs.ErrFetch)

	tbl, err := tk.Recommendations()
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, 2, built)
}

func TestTableDispatch(t *testing.T) {
	t.Parallel()

	tk, md := newTicker(t, "AAPL")
	md.EXPECT().MutualFundHolders(gomock.Any(), "AAPL").
		Return(models.Holders{{Name: "Vanguard 500", DateReported: 1719705600}}, nil)

	tbl, err := tk.Table("mutualfund_holders")
	require.NoError(t, err)
	assert.Equal(t, []string{"holder", "shares", "date_reported", "pct_held", "value"}, tbl.Names())

	_, err = tk.Table("nope")
	assert.ErrorIs(t, err, errs.ErrInputFormat)
	assert.Contains(t, usecase.TableNames(), "insider_roster_holders")
	assert.Len(t, usecase.TableNames(), 17)
}
