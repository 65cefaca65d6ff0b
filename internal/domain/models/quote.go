package models

// Info is the full quote snapshot for a symbol. Nil fields were not reported
// by the provider.
type Info struct {
	Name              *string
	ISIN              *string
	Exchange          *string
	MarketState       *string
	Currency          *string
	Last              *float64
	Open              *float64
	High              *float64
	Low               *float64
	PreviousClose     *float64
	Volume            *uint64
	AverageVolume     *uint64
	MarketCap         *float64
	SharesOutstanding *uint64
	EpsTTM            *float64
	PeTTM             *float64
	DividendYield     *float64
	FiftyTwoWeekLow   *float64
	FiftyTwoWeekHigh  *float64
}

// FastInfo is the lightweight quote subset.
type FastInfo struct {
	Name     *string
	Exchange *string
	Currency *string
	Volume   *uint64
}
