package models

// Requests for the ticker HTTP endpoints. Boolean flags are strings so an
// explicit "false" survives default filling.

type SymbolRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,max=32"`
}

type HistoryRequest struct {
	Symbol     string `param:"symbol" json:"symbol" validate:"required,max=32"`
	Period     string `query:"period" json:"period" default:"1mo"`
	Interval   string `query:"interval" json:"interval" default:"1d"`
	Start      string `query:"start" json:"start"`
	End        string `query:"end" json:"end"`
	Prepost    string `query:"prepost" json:"prepost" default:"false" validate:"boolean"`
	AutoAdjust string `query:"auto_adjust" json:"auto_adjust" default:"true" validate:"boolean"`
	Actions    string `query:"actions" json:"actions" default:"true" validate:"boolean"`
}

type OptionChainRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,max=32"`
	Date   string `query:"date" json:"date"`
}
