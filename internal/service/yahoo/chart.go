package yahoo

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"

	"FinFrame/internal/domain/models"
	"FinFrame/internal/domain/repository"
)

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Currency     string `json:"currency"`
		ExchangeName string `json:"exchangeName"`
		Symbol       string `json:"symbol"`
	} `json:"meta"`
	Timestamp []int64 `json:"timestamp"`
	Events    struct {
		Dividends    map[string]chartAmount `json:"dividends"`
		Splits       map[string]chartSplit  `json:"splits"`
		CapitalGains map[string]chartAmount `json:"capitalGains"`
	} `json:"events"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

type chartAmount struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

type chartSplit struct {
	Date        int64   `json:"date"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
}

const chartEvents = "div|split|capitalGains"

func (c *Client) chart(ctx context.Context, symbol string, q url.Values) (*chartResult, error) {
	var resp chartResponse
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), q, &resp); err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	if err := resp.Chart.Error.err(); err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart %s: %w", symbol, ErrNoData)
	}
	return &resp.Chart.Result[0], nil
}

// eventsChart fetches the full event history at daily resolution.
func (c *Client) eventsChart(ctx context.Context, symbol string) (*chartResult, error) {
	return c.chart(ctx, symbol, url.Values{
		"range":    {repository.RangeMax.String()},
		"interval": {repository.IntervalD1.String()},
		"events":   {chartEvents},
	})
}

func (c *Client) History(ctx context.Context, symbol string, req repository.HistoryRequest) (models.Candles, error) {
	q := url.Values{
		"range":          {req.Range.String()},
		"interval":       {req.Interval.String()},
		"includePrePost": {strconv.FormatBool(req.Prepost)},
	}
	if req.Actions {
		q.Set("events", chartEvents)
	}
	res, err := c.chart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}
	return res.candles(req.AutoAdjust), nil
}

// candles skips bars with any missing price. With autoAdjust the OHLC
// values are scaled by adjclose/close and adj_close is left empty.
func (r *chartResult) candles(autoAdjust bool) models.Candles {
	if len(r.Indicators.Quote) == 0 {
		return models.Candles{}
	}
	q := r.Indicators.Quote[0]
	var adj []*float64
	if len(r.Indicators.AdjClose) > 0 {
		adj = r.Indicators.AdjClose[0].AdjClose
	}

	out := make(models.Candles, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		o, h, l, cl := at(q.Open, i), at(q.High, i), at(q.Low, i), at(q.Close, i)
		if o == nil || h == nil || l == nil || cl == nil {
			continue
		}
		candle := models.Candle{Timestamp: ts, Open: *o, High: *h, Low: *l, Close: *cl}
		if i < len(q.Volume) {
			candle.Volume = q.Volume[i]
		}
		if a := at(adj, i); a != nil {
			if autoAdjust && *cl != 0 {
				ratio := *a / *cl
				candle.Open *= ratio
				candle.High *= ratio
				candle.Low *= ratio
				candle.Close = *a
			} else if !autoAdjust {
				v := *a
				candle.AdjClose = &v
			}
		}
		out = append(out, candle)
	}
	return out
}

func at(vs []*float64, i int) *float64 {
	if i < len(vs) {
		return vs[i]
	}
	return nil
}

func (r *chartResult) dividends() []models.Dividend {
	out := make([]models.Dividend, 0, len(r.Events.Dividends))
	for _, d := range r.Events.Dividends {
		out = append(out, models.Dividend{Timestamp: d.Date, Amount: d.Amount})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}

func (r *chartResult) capitalGains() []models.CapitalGain {
	out := make([]models.CapitalGain, 0, len(r.Events.CapitalGains))
	for _, g := range r.Events.CapitalGains {
		out = append(out, models.CapitalGain{Timestamp: g.Date, Amount: g.Amount})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}

// splits drops entries whose ratio parts are not positive whole numbers.
func (r *chartResult) splits() []models.Split {
	out := make([]models.Split, 0, len(r.Events.Splits))
	for _, s := range r.Events.Splits {
		num, den, ok := splitParts(s.Numerator, s.Denominator)
		if !ok {
			continue
		}
		out = append(out, models.Split{Timestamp: s.Date, Numerator: num, Denominator: den})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}

// splitParts scales a fractional ratio such as 1.5:1 to whole parts in
// lowest terms (3:2). Whole ratios pass through as given. Non-positive parts,
// or parts that stay fractional after six decimal places, are rejected.
func splitParts(num, den float64) (uint32, uint32, bool) {
	if !(num > 0 && den > 0) {
		return 0, 0, false
	}
	for scale := 0; scale <= 6; scale++ {
		n, d := math.Round(num), math.Round(den)
		if math.Abs(num-n) < 1e-9 && math.Abs(den-d) < 1e-9 {
			if n > math.MaxUint32 || d > math.MaxUint32 {
				return 0, 0, false
			}
			a, b := uint64(n), uint64(d)
			if scale > 0 {
				g := gcd(a, b)
				a, b = a/g, b/g
			}
			return uint32(a), uint32(b), true
		}
		num *= 10
		den *= 10
	}
	return 0, 0, false
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (c *Client) Dividends(ctx context.Context, symbol string) ([]models.Dividend, error) {
	res, err := c.eventsChart(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return res.dividends(), nil
}

func (c *Client) Splits(ctx context.Context, symbol string) ([]models.Split, error) {
	res, err := c.eventsChart(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return res.splits(), nil
}

func (c *Client) CapitalGains(ctx context.Context, symbol string) ([]models.CapitalGain, error) {
	res, err := c.eventsChart(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return res.capitalGains(), nil
}

// Actions returns every corporate action by date. Events sharing a date keep
// the order dividend, split, capital gain.
func (c *Client) Actions(ctx context.Context, symbol string) ([]models.Action, error) {
	res, err := c.eventsChart(ctx, symbol)
	if err != nil {
		return nil, err
	}
	var out []models.Action
	for _, d := range res.dividends() {
		out = append(out, d)
	}
	for _, s := range res.splits() {
		out = append(out, s)
	}
	for _, g := range res.capitalGains() {
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time() < out[j].Time() })
	return out, nil
}
