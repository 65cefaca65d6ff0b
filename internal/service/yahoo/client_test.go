package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinFrame/internal/domain/models"
	"FinFrame/internal/domain/repository"
	"FinFrame/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(config.Client{
		BaseURL:   srv.URL,
		ISINURL:   srv.URL + "/isin",
		Timeout:   5 * time.Second,
		UserAgent: "finframe-test",
		Crumb:     "abc",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func serveJSON(t *testing.T, wantPath, body string, check func(r *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

const chartBody = `{"chart":{"result":[{
  "meta":{"currency":"USD","symbol":"AAPL"},
  "timestamp":[1718928000,1719014400,1719100800],
  "events":{
    "dividends":{"1715347800":{"amount":0.25,"date":1715347800},"1707489000":{"amount":0.24,"date":1707489000}},
    "splits":{"1598880600":{"date":1598880600,"numerator":4,"denominator":1,"splitRatio":"4:1"}},
    "capitalGains":{"1600000000":{"amount":1.5,"date":1600000000}}
  },
  "indicators":{
    "quote":[{"open":[10,11,null],"high":[12,13,14],"low":[9,10,11],"close":[11,12,13],"volume":[100,null,300]}],
    "adjclose":[{"adjclose":[5.5,6,6.5]}]
  }
}],"error":null}}`

func TestHistory(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v8/finance/chart/AAPL", chartBody, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1y", q.Get("range"))
		assert.Equal(t, "1h", q.Get("interval"))
		assert.Equal(t, "false", q.Get("includePrePost"))
		assert.Equal(t, "abc", q.Get("crumb"))
		assert.Equal(t, "finframe-test", r.Header.Get("User-Agent"))
	}))

	candles, err := c.History(context.Background(), "AAPL", repository.HistoryRequest{
		Range:    repository.RangeY1,
		Interval: repository.IntervalH1,
	})
	require.NoError(t, err)
	require.Len(t, candles, 2, "bar with a null open is skipped")

	assert.Equal(t, int64(1718928000), candles[0].Timestamp)
	require.NotNil(t, candles[0].AdjClose)
	assert.Equal(t, 5.5, *candles[0].AdjClose)
	require.NotNil(t, candles[0].Volume)
	assert.Nil(t, candles[1].Volume)
}

func TestHistoryAutoAdjust(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v8/finance/chart/AAPL", chartBody, nil))

	candles, err := c.History(context.Background(), "AAPL", repository.HistoryRequest{
		Range: repository.RangeM1, Interval: repository.IntervalD1, AutoAdjust: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, candles)
	assert.Nil(t, candles[0].AdjClose)
	assert.InDelta(t, 5.5, candles[0].Close, 1e-9)
	assert.InDelta(t, 5.0, candles[0].Open, 1e-9)
}

func TestActionsOrderedByDate(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v8/finance/chart/AAPL", chartBody, func(r *http.Request) {
		assert.Equal(t, "max", r.URL.Query().Get("range"))
		assert.Equal(t, "div|split|capitalGains", r.URL.Query().Get("events"))
	}))

	actions, err := c.Actions(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, []models.Action{
		models.Split{Timestamp: 1598880600, Numerator: 4, Denominator: 1},
		models.CapitalGain{Timestamp: 1600000000, Amount: 1.5},
		models.Dividend{Timestamp: 1707489000, Amount: 0.24},
		models.Dividend{Timestamp: 1715347800, Amount: 0.25},
	}, actions)
}

func TestSplitsKeepFractionalRatios(t *testing.T) {
	body := `{"chart":{"result":[{"events":{"splits":{
	  "1600000000":{"date":1600000000,"numerator":1.5,"denominator":1},
	  "1500000000":{"date":1500000000,"numerator":0,"denominator":1},
	  "1400000000":{"date":1400000000,"numerator":1,"denominator":0.1234567},
	  "1300000000":{"date":1300000000,"numerator":10,"denominator":4}
	}}}],"error":null}}`
	c := newTestClient(t, serveJSON(t, "/v8/finance/chart/XYZ", body, nil))

	splits, err := c.Splits(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Equal(t, []models.Split{
		{Timestamp: 1300000000, Numerator: 10, Denominator: 4},
		{Timestamp: 1600000000, Numerator: 3, Denominator: 2},
	}, splits)
}

func TestSplitParts(t *testing.T) {
	cases := []struct {
		num, den float64
		n, d     uint32
		ok       bool
	}{
		{4, 1, 4, 1, true},
		{1.5, 1, 3, 2, true},
		{1, 0.25, 4, 1, true},
		{2.5, 1.5, 5, 3, true},
		{0, 1, 0, 0, false},
		{1, -2, 0, 0, false},
		{1, 1.0 / 3, 0, 0, false},
	}
	for _, tc := range cases {
		n, d, ok := splitParts(tc.num, tc.den)
		assert.Equal(t, tc.ok, ok, "%v:%v", tc.num, tc.den)
		assert.Equal(t, tc.n, n, "%v:%v", tc.num, tc.den)
		assert.Equal(t, tc.d, d, "%v:%v", tc.num, tc.den)
	}
}

func TestChartErrorObject(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v8/finance/chart/NOPE",
		`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`, nil))

	_, err := c.Dividends(context.Background(), "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbol may be delisted")
}

func TestStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
	})

	_, err := c.Info(context.Background(), "AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestInfo(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v7/finance/quote", `{"quoteResponse":{"result":[{
	  "symbol":"AAPL","longName":"Apple Inc.","exchange":"NMS","fullExchangeName":"NasdaqGS",
	  "currency":"USD","regularMarketPrice":189.98,"regularMarketVolume":51234567,"sharesOutstanding":15204100096
	}],"error":null}}`, func(r *http.Request) {
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbols"))
	}))

	info, err := c.Info(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, info.Name)
	assert.Equal(t, "Apple Inc.", *info.Name)
	assert.Equal(t, "NMS", *info.Exchange)
	assert.Equal(t, uint64(51234567), *info.Volume)
	assert.Equal(t, uint64(15204100096), *info.SharesOutstanding)
	assert.Nil(t, info.Open)

	fi, err := c.FastInfo(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "NasdaqGS", *fi.Exchange)
}

func TestMajorHolders(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v10/finance/quoteSummary/AAPL", `{"quoteSummary":{"result":[{
	  "majorHoldersBreakdown":{"insidersPercentHeld":{"raw":0.0171,"fmt":"1.71%"},"institutionsCount":{"raw":6432,"fmt":"6.43k"}}
	}],"error":null}}`, func(r *http.Request) {
		assert.Equal(t, "majorHoldersBreakdown", r.URL.Query().Get("modules"))
	}))

	hs, err := c.MajorHolders(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, []models.MajorHolder{
		{Category: "insidersPercentHeld", Value: 0.0171},
		{Category: "institutionsCount", Value: 6432},
	}, hs)
}

func TestQuarterlyCashflow(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v10/finance/quoteSummary/AAPL", `{"quoteSummary":{"result":[{
	  "cashflowStatementHistoryQuarterly":{"cashflowStatements":[
	    {"endDate":{"raw":1711843200},"totalCashFromOperatingActivities":{"raw":22690000000},"capitalExpenditures":{"raw":-1996000000}},
	    {"endDate":{"raw":1703980800},"netIncome":{"raw":33916000000}}
	  ]}
	}],"error":null}}`, func(r *http.Request) {
		assert.Equal(t, "cashflowStatementHistoryQuarterly", r.URL.Query().Get("modules"))
	}))

	cf, err := c.Cashflow(context.Background(), "AAPL", models.Quarterly)
	require.NoError(t, err)
	require.Len(t, cf, 2)
	require.NotNil(t, cf[0].FreeCashflow)
	assert.Equal(t, 20694000000.0, *cf[0].FreeCashflow)
	assert.Nil(t, cf[1].FreeCashflow)
	assert.Equal(t, int64(1703980800), cf[1].PeriodEnd)
}

func TestCalendar(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v10/finance/quoteSummary/AAPL", `{"quoteSummary":{"result":[{
	  "calendarEvents":{"earnings":{"earningsDate":[{"raw":1722024000}]},"exDividendDate":{"raw":1715299200}}
	}],"error":null}}`, nil))

	cal, err := c.Calendar(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, cal.EarningsDates, 1)
	assert.Equal(t, "2024-07-26", cal.EarningsDates[0].Format("2006-01-02"))
	require.NotNil(t, cal.ExDividendDate)
	assert.Equal(t, "2024-05-10", cal.ExDividendDate.Format("2006-01-02"))
	assert.Nil(t, cal.DividendPaymentDate)
}

const optionsBody = `{"optionChain":{"result":[{
  "expirationDates":[1718928000,1719532800],
  "options":[{"expirationDate":1718928000,
    "calls":[{"contractSymbol":"AAPL240621C00190000","strike":190,"currency":"USD","lastPrice":2.5,"volume":1200,"inTheMoney":false,"expiration":1718928000,"lastTradeDate":1718900000}],
    "puts":[]}]
}],"error":null}}`

func TestOptionExpirations(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v7/finance/options/AAPL", optionsBody, func(r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("date"))
	}))

	exps, err := c.OptionExpirations(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, []int64{1718928000, 1719532800}, exps)
}

func TestOptionChainSendsDate(t *testing.T) {
	c := newTestClient(t, serveJSON(t, "/v7/finance/options/AAPL", optionsBody, func(r *http.Request) {
		assert.Equal(t, "1718928000", r.URL.Query().Get("date"))
	}))

	exp := int64(1718928000)
	chain, err := c.OptionChain(context.Background(), "AAPL", &exp)
	require.NoError(t, err)
	assert.Equal(t, exp, chain.Expiration)
	require.Len(t, chain.Calls, 1)
	assert.Equal(t, uint64(1200), *chain.Calls[0].Volume)
	assert.Nil(t, chain.Calls[0].OpenInterest)
	assert.Empty(t, chain.Puts)
}

func TestISIN(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/isin", r.URL.Path)
		_, _ = w.Write([]byte(`mmSuggestDeliver(0, new Array("Name", "Category", "Keywords"), new Array(new Array("Apple Inc.", "Stocks", "AAPL|US0378331005|AAPL||AAPL")), 1, 0);`))
	})

	isin, err := c.ISIN(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "US0378331005", isin)

	isin, err = c.ISIN(context.Background(), "BTC-USD")
	require.NoError(t, err)
	assert.Empty(t, isin)
}

func TestParseISIN(t *testing.T) {
	assert.Equal(t, "", parseISIN(`new Array("Nothing here")`, "MSFT"))
	assert.Equal(t, "", parseISIN(`"MSFT|not-an-isin|x"`, "MSFT"))
	assert.Equal(t, "US5949181045", parseISIN(`"MSFT|US5949181045|MSFT"`, "MSFT"))
}

func TestNewRejectsBadProxy(t *testing.T) {
	_, err := New(config.Client{BaseURL: "http://localhost", ProxyURL: "://bad"})
	assert.Error(t, err)

	_, err = NewFactory(config.Client{})()
	assert.Error(t, err)
}
