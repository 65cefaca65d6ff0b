package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"FinFrame/internal/domain/models"
)

type optionsResponse struct {
	OptionChain struct {
		Result []struct {
			ExpirationDates []int64 `json:"expirationDates"`
			Options         []struct {
				ExpirationDate int64            `json:"expirationDate"`
				Calls          []optionContract `json:"calls"`
				Puts           []optionContract `json:"puts"`
			} `json:"options"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"optionChain"`
}

type optionContract struct {
	ContractSymbol    string   `json:"contractSymbol"`
	Strike            float64  `json:"strike"`
	Currency          string   `json:"currency"`
	LastPrice         *float64 `json:"lastPrice"`
	Bid               *float64 `json:"bid"`
	Ask               *float64 `json:"ask"`
	Volume            *float64 `json:"volume"`
	OpenInterest      *float64 `json:"openInterest"`
	ImpliedVolatility *float64 `json:"impliedVolatility"`
	InTheMoney        bool     `json:"inTheMoney"`
	Expiration        int64    `json:"expiration"`
	LastTradeDate     *int64   `json:"lastTradeDate"`
}

func (o optionContract) model() models.OptionContract {
	return models.OptionContract{
		ContractSymbol:    o.ContractSymbol,
		Strike:            o.Strike,
		Currency:          o.Currency,
		LastPrice:         o.LastPrice,
		Bid:               o.Bid,
		Ask:               o.Ask,
		Volume:            toUint64(o.Volume),
		OpenInterest:      toUint64(o.OpenInterest),
		ImpliedVolatility: o.ImpliedVolatility,
		InTheMoney:        o.InTheMoney,
		Expiration:        o.Expiration,
		LastTradeDate:     o.LastTradeDate,
	}
}

func contracts(in []optionContract) models.OptionContracts {
	out := make(models.OptionContracts, 0, len(in))
	for _, o := range in {
		out = append(out, o.model())
	}
	return out
}

func (c *Client) options(ctx context.Context, symbol string, expiration *int64) (*optionsResponse, error) {
	var q url.Values
	if expiration != nil {
		q = url.Values{"date": {strconv.FormatInt(*expiration, 10)}}
	}
	var resp optionsResponse
	if err := c.get(ctx, "/v7/finance/options/"+url.PathEscape(symbol), q, &resp); err != nil {
		return nil, fmt.Errorf("options %s: %w", symbol, err)
	}
	if err := resp.OptionChain.Error.err(); err != nil {
		return nil, fmt.Errorf("options %s: %w", symbol, err)
	}
	if len(resp.OptionChain.Result) == 0 {
		return nil, fmt.Errorf("options %s: %w", symbol, ErrNoData)
	}
	return &resp, nil
}

func (c *Client) OptionExpirations(ctx context.Context, symbol string) ([]int64, error) {
	resp, err := c.options(ctx, symbol, nil)
	if err != nil {
		return nil, err
	}
	return resp.OptionChain.Result[0].ExpirationDates, nil
}

// OptionChain returns an empty chain when the expiration has no listed
// contracts.
func (c *Client) OptionChain(ctx context.Context, symbol string, expiration *int64) (*models.OptionChain, error) {
	resp, err := c.options(ctx, symbol, expiration)
	if err != nil {
		return nil, err
	}
	res := resp.OptionChain.Result[0]
	chain := &models.OptionChain{Calls: models.OptionContracts{}, Puts: models.OptionContracts{}}
	if expiration != nil {
		chain.Expiration = *expiration
	}
	if len(res.Options) == 0 {
		return chain, nil
	}
	opt := res.Options[0]
	chain.Expiration = opt.ExpirationDate
	chain.Calls = contracts(opt.Calls)
	chain.Puts = contracts(opt.Puts)
	return chain, nil
}
