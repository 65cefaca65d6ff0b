package usecase

import (
	"context"
	"strconv"

	"FinFrame/internal/domain/models"
	"FinFrame/internal/domain/repository"
)

// quoteMap builds a key/value snapshot. Keys are only set for values the
// provider reported; decimals are rendered as exact strings.
type quoteMap map[string]any

func (m quoteMap) str(key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func (m quoteMap) decimal(key string, v *float64) {
	if v != nil {
		m[key] = strconv.FormatFloat(*v, 'f', -1, 64)
	}
}

func (m quoteMap) count(key string, v *uint64) {
	if v != nil {
		m[key] = *v
	}
}

// Info returns the full quote snapshot. "symbol" is always present.
func (t *Ticker) Info() (map[string]any, error) {
	info, err := fetch(t, "info", func(ctx context.Context, md repository.MarketData) (*models.Info, error) {
		return md.Info(ctx, t.symbol)
	})
	if err != nil {
		return nil, err
	}
	m := quoteMap{"symbol": t.symbol}
	if info == nil {
		return m, nil
	}
	m.str("shortName", info.Name)
	m.str("isin", info.ISIN)
	m.str("exchange", info.Exchange)
	m.str("marketState", info.MarketState)
	m.str("currency", info.Currency)
	m.decimal("regularMarketPrice", info.Last)
	m.decimal("regularMarketOpen", info.Open)
	m.decimal("regularMarketDayHigh", info.High)
	m.decimal("regularMarketDayLow", info.Low)
	m.decimal("regularMarketPreviousClose", info.PreviousClose)
	m.count("regularMarketVolume", info.Volume)
	m.count("averageVolume", info.AverageVolume)
	m.decimal("marketCap", info.MarketCap)
	m.count("sharesOutstanding", info.SharesOutstanding)
	m.decimal("trailingEps", info.EpsTTM)
	m.decimal("trailingPE", info.PeTTM)
	m.decimal("dividendYield", info.DividendYield)
	m.decimal("fiftyTwoWeekLow", info.FiftyTwoWeekLow)
	m.decimal("fiftyTwoWeekHigh", info.FiftyTwoWeekHigh)
	return m, nil
}

// FastInfo returns the lightweight quote subset.
func (t *Ticker) FastInfo() (map[string]any, error) {
	fi, err := fetch(t, "fast_info", func(ctx context.Context, md repository.MarketData) (*models.FastInfo, error) {
		return md.FastInfo(ctx, t.symbol)
	})
	if err != nil {
		return nil, err
	}
	m := quoteMap{"symbol": t.symbol}
	if fi == nil {
		return m, nil
	}
	m.str("name", fi.Name)
	m.str("exchange", fi.Exchange)
	m.str("currency", fi.Currency)
	m.count("volume", fi.Volume)
	return m, nil
}

// ISIN returns nil when the provider has no ISIN for the symbol.
func (t *Ticker) ISIN() (*string, error) {
	isin, err := fetch(t, "isin", func(ctx context.Context, md repository.MarketData) (string, error) {
		return md.ISIN(ctx, t.symbol)
	})
	if err != nil || isin == "" {
		return nil, err
	}
	return &isin, nil
}
