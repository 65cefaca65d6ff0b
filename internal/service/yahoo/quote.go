package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"FinFrame/internal/domain/models"
	pkghttp "FinFrame/pkg/http"
)

type quoteResponse struct {
	QuoteResponse struct {
		Result []quote   `json:"result"`
		Error  *apiError `json:"error"`
	} `json:"quoteResponse"`
}

type quote struct {
	Symbol                      string   `json:"symbol"`
	ShortName                   *string  `json:"shortName"`
	LongName                    *string  `json:"longName"`
	Exchange                    *string  `json:"exchange"`
	FullExchangeName            *string  `json:"fullExchangeName"`
	MarketState                 *string  `json:"marketState"`
	Currency                    *string  `json:"currency"`
	RegularMarketPrice          *float64 `json:"regularMarketPrice"`
	RegularMarketOpen           *float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh        *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow         *float64 `json:"regularMarketDayLow"`
	RegularMarketPreviousClose  *float64 `json:"regularMarketPreviousClose"`
	RegularMarketVolume         *float64 `json:"regularMarketVolume"`
	AverageDailyVolume3Month    *float64 `json:"averageDailyVolume3Month"`
	MarketCap                   *float64 `json:"marketCap"`
	SharesOutstanding           *float64 `json:"sharesOutstanding"`
	EpsTrailingTwelveMonths     *float64 `json:"epsTrailingTwelveMonths"`
	TrailingPE                  *float64 `json:"trailingPE"`
	TrailingAnnualDividendYield *float64 `json:"trailingAnnualDividendYield"`
	FiftyTwoWeekLow             *float64 `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh            *float64 `json:"fiftyTwoWeekHigh"`
}

func (q *quote) name() *string {
	if q.ShortName != nil {
		return q.ShortName
	}
	return q.LongName
}

func (c *Client) quote(ctx context.Context, symbol string) (*quote, error) {
	var resp quoteResponse
	if err := c.get(ctx, "/v7/finance/quote", url.Values{"symbols": {symbol}}, &resp); err != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}
	if err := resp.QuoteResponse.Error.err(); err != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}
	if len(resp.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("quote %s: %w", symbol, ErrNoData)
	}
	return &resp.QuoteResponse.Result[0], nil
}

func (c *Client) Info(ctx context.Context, symbol string) (*models.Info, error) {
	q, err := c.quote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return &models.Info{
		Name:              q.name(),
		Exchange:          q.Exchange,
		MarketState:       q.MarketState,
		Currency:          q.Currency,
		Last:              q.RegularMarketPrice,
		Open:              q.RegularMarketOpen,
		High:              q.RegularMarketDayHigh,
		Low:               q.RegularMarketDayLow,
		PreviousClose:     q.RegularMarketPreviousClose,
		Volume:            toUint64(q.RegularMarketVolume),
		AverageVolume:     toUint64(q.AverageDailyVolume3Month),
		MarketCap:         q.MarketCap,
		SharesOutstanding: toUint64(q.SharesOutstanding),
		EpsTTM:            q.EpsTrailingTwelveMonths,
		PeTTM:             q.TrailingPE,
		DividendYield:     q.TrailingAnnualDividendYield,
		FiftyTwoWeekLow:   q.FiftyTwoWeekLow,
		FiftyTwoWeekHigh:  q.FiftyTwoWeekHigh,
	}, nil
}

func (c *Client) FastInfo(ctx context.Context, symbol string) (*models.FastInfo, error) {
	q, err := c.quote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	exchange := q.FullExchangeName
	if exchange == nil {
		exchange = q.Exchange
	}
	return &models.FastInfo{
		Name:     q.name(),
		Exchange: exchange,
		Currency: q.Currency,
		Volume:   toUint64(q.RegularMarketVolume),
	}, nil
}

// ISIN looks the symbol up in the Business Insider suggest feed, whose
// entries read like "AAPL|US0378331005|AAPL||AAPL". Returns "" when no ISIN
// is listed.
func (c *Client) ISIN(ctx context.Context, symbol string) (string, error) {
	if c.isinURL == "" || strings.Contains(symbol, "-") || strings.Contains(symbol, "^") {
		return "", nil
	}
	var body []byte
	err := c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method:      pkghttp.MethodGet,
		URL:         c.isinURL,
		QueryParams: url.Values{"max_results": {"25"}, "query": {symbol}},
	}, &body)
	if err != nil {
		return "", fmt.Errorf("isin %s: %w", symbol, err)
	}
	return parseISIN(string(body), symbol), nil
}

func parseISIN(data, symbol string) string {
	marker := `"` + symbol + `|`
	idx := strings.Index(data, marker)
	if idx < 0 {
		if !strings.Contains(strings.ToLower(data), strings.ToLower(symbol)) {
			return ""
		}
		marker = `"|`
		idx = strings.Index(data, marker)
		if idx < 0 {
			return ""
		}
	}
	rest := data[idx+len(marker):]
	if end := strings.IndexByte(rest, '"'); end >= 0 {
		rest = rest[:end]
	}
	isin, _, _ := strings.Cut(rest, "|")
	if !isISIN(isin) {
		return ""
	}
	return isin
}

// isISIN checks the shape: two letters, nine alphanumerics and a check digit.
func isISIN(s string) bool {
	if len(s) != 12 {
		return false
	}
	for i := 0; i < 12; i++ {
		ch := s[i]
		switch {
		case i < 2 && ch >= 'A' && ch <= 'Z':
		case i >= 2 && i < 11 && (ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'):
		case i == 11 && ch >= '0' && ch <= '9':
		default:
			return false
		}
	}
	return true
}
