package models

// Action is a corporate action event: Dividend, Split or CapitalGain.
// The set is closed; the unexported marker keeps other packages from adding variants.
type Action interface {
	Time() int64
	action()
}

// Dividend is a cash distribution per share at Timestamp (Unix seconds).
type Dividend struct {
	Timestamp int64
	Amount    float64
}

// Split is a Numerator:Denominator stock split. Both parts are > 0.
type Split struct {
	Timestamp   int64
	Numerator   uint32
	Denominator uint32
}

// CapitalGain is a capital-gain distribution per share.
type CapitalGain struct {
	Timestamp int64
	Amount    float64
}

func (d Dividend) Time() int64    { return d.Timestamp }
func (s Split) Time() int64       { return s.Timestamp }
func (g CapitalGain) Time() int64 { return g.Timestamp }

func (Dividend) action()    {}
func (Split) action()       {}
func (CapitalGain) action() {}

// Ratio returns numerator / denominator.
func (s Split) Ratio() float64 {
	return float64(s.Numerator) / float64(s.Denominator)
}
