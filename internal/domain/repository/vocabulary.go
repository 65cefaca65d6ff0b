package repository

// Range is a supported history lookback window.
type Range int

const (
	RangeD1 Range = iota
	RangeD5
	RangeM1
	RangeM3
	RangeM6
	RangeY1
	RangeY2
	RangeY5
	RangeY10
	RangeYTD
	RangeMax
)

var rangeTokens = map[string]Range{
	"1d":  RangeD1,
	"5d":  RangeD5,
	"1mo": RangeM1,
	"3mo": RangeM3,
	"6mo": RangeM6,
	"1y":  RangeY1,
	"2y":  RangeY2,
	"5y":  RangeY5,
	"10y": RangeY10,
	"ytd": RangeYTD,
	"max": RangeMax,
}

// DefaultRange returns the range used for empty or unrecognized tokens.
func DefaultRange() Range { return RangeM1 }

// IsKnownRange reports whether token names a range exactly.
func IsKnownRange(token string) bool {
	_, ok := rangeTokens[token]
	return ok
}

// ParseRange maps a period token to a Range. Matching is exact and
// case-sensitive; anything else resolves to DefaultRange.
func ParseRange(token string) Range {
	if r, ok := rangeTokens[token]; ok {
		return r
	}
	return DefaultRange()
}

// String returns the provider token for r.
func (r Range) String() string {
	switch r {
	case RangeD1:
		return "1d"
	case RangeD5:
		return "5d"
	case RangeM1:
		return "1mo"
	case RangeM3:
		return "3mo"
	case RangeM6:
		return "6mo"
	case RangeY1:
		return "1y"
	case RangeY2:
		return "2y"
	case RangeY5:
		return "5y"
	case RangeY10:
		return "10y"
	case RangeYTD:
		return "ytd"
	case RangeMax:
		return "max"
	default:
		return DefaultRange().String()
	}
}

// Interval is a supported candle sampling granularity.
type Interval int

const (
	IntervalM1 Interval = iota
	IntervalM2
	IntervalM5
	IntervalM15
	IntervalM30
	IntervalM90
	IntervalH1
	IntervalD1
	IntervalD5
	IntervalW1
	IntervalMo1
	IntervalMo3
)

// "60m" and "1h" are aliases.
var intervalTokens = map[string]Interval{
	"1m":  IntervalM1,
	"2m":  IntervalM2,
	"5m":  IntervalM5,
	"15m": IntervalM15,
	"30m": IntervalM30,
	"90m": IntervalM90,
	"60m": IntervalH1,
	"1h":  IntervalH1,
	"1d":  IntervalD1,
	"5d":  IntervalD5,
	"1wk": IntervalW1,
	"1mo": IntervalMo1,
	"3mo": IntervalMo3,
}

// DefaultInterval returns the interval used for empty or unrecognized tokens.
func DefaultInterval() Interval { return IntervalD1 }

// IsKnownInterval reports whether token names an interval exactly.
func IsKnownInterval(token string) bool {
	_, ok := intervalTokens[token]
	return ok
}

// ParseInterval maps an interval token to an Interval, falling back to
// DefaultInterval like ParseRange does.
func ParseInterval(token string) Interval {
	if i, ok := intervalTokens[token]; ok {
		return i
	}
	return DefaultInterval()
}

// String returns the provider token for i.
func (i Interval) String() string {
	switch i {
	case IntervalM1:
		return "1m"
	case IntervalM2:
		return "2m"
	case IntervalM5:
		return "5m"
	case IntervalM15:
		return "15m"
	case IntervalM30:
		return "30m"
	case IntervalM90:
		return "90m"
	case IntervalH1:
		return "1h"
	case IntervalD1:
		return "1d"
	case IntervalD5:
		return "5d"
	case IntervalW1:
		return "1wk"
	case IntervalMo1:
		return "1mo"
	case IntervalMo3:
		return "3mo"
	default:
		return DefaultInterval().String()
	}
}
