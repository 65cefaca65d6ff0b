package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"FinFrame/internal/domain/models"
)

type summaryResponse struct {
	QuoteSummary struct {
		Result []summary `json:"result"`
		Error  *apiError `json:"error"`
	} `json:"quoteSummary"`
}

// summary holds the quoteSummary modules this client reads. Only the
// requested modules are populated.
type summary struct {
	IncomeStatementHistory          *incomeHistory   `json:"incomeStatementHistory"`
	IncomeStatementHistoryQuarterly *incomeHistory   `json:"incomeStatementHistoryQuarterly"`
	BalanceSheetHistory             *balanceHistory  `json:"balanceSheetHistory"`
	BalanceSheetHistoryQuarterly    *balanceHistory  `json:"balanceSheetHistoryQuarterly"`
	CashflowStatementHistory        *cashflowHistory `json:"cashflowStatementHistory"`
	CashflowStatementHistoryQtr     *cashflowHistory `json:"cashflowStatementHistoryQuarterly"`

	Earnings *struct {
		EarningsChart struct {
			Quarterly []struct {
				Date     string  `json:"date"`
				Actual   *rawNum `json:"actual"`
				Estimate *rawNum `json:"estimate"`
			} `json:"quarterly"`
		} `json:"earningsChart"`
		FinancialsChart struct {
			Yearly []struct {
				Date     int     `json:"date"`
				Revenue  *rawNum `json:"revenue"`
				Earnings *rawNum `json:"earnings"`
			} `json:"yearly"`
			Quarterly []struct {
				Date     string  `json:"date"`
				Revenue  *rawNum `json:"revenue"`
				Earnings *rawNum `json:"earnings"`
			} `json:"quarterly"`
		} `json:"financialsChart"`
	} `json:"earnings"`

	CalendarEvents *struct {
		Earnings struct {
			EarningsDate []rawNum `json:"earningsDate"`
		} `json:"earnings"`
		ExDividendDate *rawNum `json:"exDividendDate"`
		DividendDate   *rawNum `json:"dividendDate"`
	} `json:"calendarEvents"`

	RecommendationTrend *struct {
		Trend []struct {
			Period     string `json:"period"`
			StrongBuy  uint32 `json:"strongBuy"`
			Buy        uint32 `json:"buy"`
			Hold       uint32 `json:"hold"`
			Sell       uint32 `json:"sell"`
			StrongSell uint32 `json:"strongSell"`
		} `json:"trend"`
	} `json:"recommendationTrend"`

	UpgradeDowngradeHistory *struct {
		History []struct {
			EpochGradeDate int64  `json:"epochGradeDate"`
			Firm           string `json:"firm"`
			ToGrade        string `json:"toGrade"`
			FromGrade      string `json:"fromGrade"`
			Action         string `json:"action"`
		} `json:"history"`
	} `json:"upgradeDowngradeHistory"`

	MajorHoldersBreakdown *struct {
		InsidersPercentHeld          *rawNum `json:"insidersPercentHeld"`
		InstitutionsPercentHeld      *rawNum `json:"institutionsPercentHeld"`
		InstitutionsFloatPercentHeld *rawNum `json:"institutionsFloatPercentHeld"`
		InstitutionsCount            *rawNum `json:"institutionsCount"`
	} `json:"majorHoldersBreakdown"`

	InstitutionOwnership *ownershipList `json:"institutionOwnership"`
	FundOwnership        *ownershipList `json:"fundOwnership"`

	InsiderTransactions *struct {
		Transactions []struct {
			StartDate       rawNum  `json:"startDate"`
			FilerName       string  `json:"filerName"`
			FilerRelation   string  `json:"filerRelation"`
			TransactionText string  `json:"transactionText"`
			Shares          *rawNum `json:"shares"`
			Value           *rawNum `json:"value"`
			Ownership       string  `json:"ownership"`
		} `json:"transactions"`
	} `json:"insiderTransactions"`

	InsiderHolders *struct {
		Holders []struct {
			Name                   string  `json:"name"`
			Relation               string  `json:"relation"`
			TransactionDescription string  `json:"transactionDescription"`
			LatestTransDate        *rawNum `json:"latestTransDate"`
			PositionDirect         *rawNum `json:"positionDirect"`
		} `json:"holders"`
	} `json:"insiderHolders"`
}

type incomeHistory struct {
	Statements []struct {
		EndDate         rawNum  `json:"endDate"`
		TotalRevenue    *rawNum `json:"totalRevenue"`
		GrossProfit     *rawNum `json:"grossProfit"`
		OperatingIncome *rawNum `json:"operatingIncome"`
		NetIncome       *rawNum `json:"netIncome"`
	} `json:"incomeStatementHistory"`
}

type balanceHistory struct {
	Statements []struct {
		EndDate                rawNum  `json:"endDate"`
		TotalAssets            *rawNum `json:"totalAssets"`
		TotalLiab              *rawNum `json:"totalLiab"`
		TotalStockholderEquity *rawNum `json:"totalStockholderEquity"`
		Cash                   *rawNum `json:"cash"`
		LongTermDebt           *rawNum `json:"longTermDebt"`
	} `json:"balanceSheetStatements"`
}

type cashflowHistory struct {
	Statements []struct {
		EndDate                          rawNum  `json:"endDate"`
		TotalCashFromOperatingActivities *rawNum `json:"totalCashFromOperatingActivities"`
		CapitalExpenditures              *rawNum `json:"capitalExpenditures"`
		NetIncome                        *rawNum `json:"netIncome"`
	} `json:"cashflowStatements"`
}

type ownershipList struct {
	OwnershipList []struct {
		Organization string  `json:"organization"`
		ReportDate   rawNum  `json:"reportDate"`
		PctHeld      *rawNum `json:"pctHeld"`
		Position     *rawNum `json:"position"`
		Value        *rawNum `json:"value"`
	} `json:"ownershipList"`
}

func (c *Client) summary(ctx context.Context, symbol, module string) (*summary, error) {
	var resp summaryResponse
	path := "/v10/finance/quoteSummary/" + url.PathEscape(symbol)
	if err := c.get(ctx, path, url.Values{"modules": {module}}, &resp); err != nil {
		return nil, fmt.Errorf("%s %s: %w", module, symbol, err)
	}
	if err := resp.QuoteSummary.Error.err(); err != nil {
		return nil, fmt.Errorf("%s %s: %w", module, symbol, err)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%s %s: %w", module, symbol, ErrNoData)
	}
	return &resp.QuoteSummary.Result[0], nil
}

func (c *Client) IncomeStatement(ctx context.Context, symbol string, freq models.Frequency) (models.IncomeStatement, error) {
	module := "incomeStatementHistory"
	if freq == models.Quarterly {
		module = "incomeStatementHistoryQuarterly"
	}
	s, err := c.summary(ctx, symbol, module)
	if err != nil {
		return nil, err
	}
	h := s.IncomeStatementHistory
	if freq == models.Quarterly {
		h = s.IncomeStatementHistoryQuarterly
	}
	out := models.IncomeStatement{}
	if h == nil {
		return out, nil
	}
	for _, st := range h.Statements {
		out = append(out, models.IncomeStatementRow{
			PeriodEnd:       st.EndDate.unix(),
			TotalRevenue:    st.TotalRevenue.value(),
			GrossProfit:     st.GrossProfit.value(),
			OperatingIncome: st.OperatingIncome.value(),
			NetIncome:       st.NetIncome.value(),
		})
	}
	return out, nil
}

func (c *Client) BalanceSheet(ctx context.Context, symbol string, freq models.Frequency) (models.BalanceSheet, error) {
	module := "balanceSheetHistory"
	if freq == models.Quarterly {
		module = "balanceSheetHistoryQuarterly"
	}
	s, err := c.summary(ctx, symbol, module)
	if err != nil {
		return nil, err
	}
	h := s.BalanceSheetHistory
	if freq == models.Quarterly {
		h = s.BalanceSheetHistoryQuarterly
	}
	out := models.BalanceSheet{}
	if h == nil {
		return out, nil
	}
	for _, st := range h.Statements {
		out = append(out, models.BalanceSheetRow{
			PeriodEnd:        st.EndDate.unix(),
			TotalAssets:      st.TotalAssets.value(),
			TotalLiabilities: st.TotalLiab.value(),
			TotalEquity:      st.TotalStockholderEquity.value(),
			Cash:             st.Cash.value(),
			LongTermDebt:     st.LongTermDebt.value(),
		})
	}
	return out, nil
}

// Cashflow derives free cash flow as operating cash flow plus capital
// expenditures (reported negative) when both are present.
func (c *Client) Cashflow(ctx context.Context, symbol string, freq models.Frequency) (models.Cashflow, error) {
	module := "cashflowStatementHistory"
	if freq == models.Quarterly {
		module = "cashflowStatementHistoryQuarterly"
	}
	s, err := c.summary(ctx, symbol, module)
	if err != nil {
		return nil, err
	}
	h := s.CashflowStatementHistory
	if freq == models.Quarterly {
		h = s.CashflowStatementHistoryQtr
	}
	out := models.Cashflow{}
	if h == nil {
		return out, nil
	}
	for _, st := range h.Statements {
		row := models.CashflowRow{
			PeriodEnd:           st.EndDate.unix(),
			OperatingCashflow:   st.TotalCashFromOperatingActivities.value(),
			CapitalExpenditures: st.CapitalExpenditures.value(),
			NetIncome:           st.NetIncome.value(),
		}
		if row.OperatingCashflow != nil && row.CapitalExpenditures != nil {
			free := *row.OperatingCashflow + *row.CapitalExpenditures
			row.FreeCashflow = &free
		}
		out = append(out, row)
	}
	return out, nil
}

func (c *Client) Earnings(ctx context.Context, symbol string) (*models.Earnings, error) {
	s, err := c.summary(ctx, symbol, "earnings")
	if err != nil {
		return nil, err
	}
	out := &models.Earnings{}
	if s.Earnings == nil {
		return out, nil
	}
	for _, y := range s.Earnings.FinancialsChart.Yearly {
		out.Yearly = append(out.Yearly, models.EarningsYear{
			Year: y.Date, Revenue: y.Revenue.value(), Earnings: y.Earnings.value(),
		})
	}
	for _, q := range s.Earnings.FinancialsChart.Quarterly {
		out.Quarterly = append(out.Quarterly, models.EarningsQuarter{
			Period: q.Date, Revenue: q.Revenue.value(), Earnings: q.Earnings.value(),
		})
	}
	for _, q := range s.Earnings.EarningsChart.Quarterly {
		out.QuarterlyEPS = append(out.QuarterlyEPS, models.EarningsQuarterEPS{
			Period: q.Date, Actual: q.Actual.value(), Estimate: q.Estimate.value(),
		})
	}
	return out, nil
}

func (c *Client) Calendar(ctx context.Context, symbol string) (*models.Calendar, error) {
	s, err := c.summary(ctx, symbol, "calendarEvents")
	if err != nil {
		return nil, err
	}
	out := &models.Calendar{}
	ev := s.CalendarEvents
	if ev == nil {
		return out, nil
	}
	for i := range ev.Earnings.EarningsDate {
		if t := day(&ev.Earnings.EarningsDate[i]); t != nil {
			out.EarningsDates = append(out.EarningsDates, *t)
		}
	}
	out.ExDividendDate = day(ev.ExDividendDate)
	out.DividendPaymentDate = day(ev.DividendDate)
	return out, nil
}

func day(n *rawNum) *time.Time {
	ts := n.asInt64()
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0).UTC().Truncate(24 * time.Hour)
	return &t
}

func (c *Client) Recommendations(ctx context.Context, symbol string) (models.Recommendations, error) {
	s, err := c.summary(ctx, symbol, "recommendationTrend")
	if err != nil {
		return nil, err
	}
	out := models.Recommendations{}
	if s.RecommendationTrend == nil {
		return out, nil
	}
	for _, r := range s.RecommendationTrend.Trend {
		out = append(out, models.RecommendationRow{
			Period:     r.Period,
			StrongBuy:  r.StrongBuy,
			Buy:        r.Buy,
			Hold:       r.Hold,
			Sell:       r.Sell,
			StrongSell: r.StrongSell,
		})
	}
	return out, nil
}

func (c *Client) UpgradesDowngrades(ctx context.Context, symbol string) (models.UpgradesDowngrades, error) {
	s, err := c.summary(ctx, symbol, "upgradeDowngradeHistory")
	if err != nil {
		return nil, err
	}
	out := models.UpgradesDowngrades{}
	if s.UpgradeDowngradeHistory == nil {
		return out, nil
	}
	for _, h := range s.UpgradeDowngradeHistory.History {
		out = append(out, models.UpgradeDowngrade{
			Timestamp: h.EpochGradeDate,
			Firm:      h.Firm,
			ToGrade:   h.ToGrade,
			FromGrade: h.FromGrade,
			Action:    h.Action,
		})
	}
	return out, nil
}

// MajorHolders keeps Yahoo's category keys, skipping unreported ones.
func (c *Client) MajorHolders(ctx context.Context, symbol string) ([]models.MajorHolder, error) {
	s, err := c.summary(ctx, symbol, "majorHoldersBreakdown")
	if err != nil {
		return nil, err
	}
	out := []models.MajorHolder{}
	b := s.MajorHoldersBreakdown
	if b == nil {
		return out, nil
	}
	add := func(category string, n *rawNum) {
		if v := n.value(); v != nil {
			out = append(out, models.MajorHolder{Category: category, Value: *v})
		}
	}
	add("insidersPercentHeld", b.InsidersPercentHeld)
	add("institutionsPercentHeld", b.InstitutionsPercentHeld)
	add("institutionsFloatPercentHeld", b.InstitutionsFloatPercentHeld)
	add("institutionsCount", b.InstitutionsCount)
	return out, nil
}

func (l *ownershipList) holders() models.Holders {
	out := models.Holders{}
	if l == nil {
		return out
	}
	for _, o := range l.OwnershipList {
		out = append(out, models.Holder{
			Name:         o.Organization,
			Shares:       o.Position.asUint64(),
			DateReported: o.ReportDate.unix(),
			PctHeld:      o.PctHeld.value(),
			Value:        o.Value.value(),
		})
	}
	return out
}

func (c *Client) InstitutionalHolders(ctx context.Context, symbol string) (models.Holders, error) {
	s, err := c.summary(ctx, symbol, "institutionOwnership")
	if err != nil {
		return nil, err
	}
	return s.InstitutionOwnership.holders(), nil
}

func (c *Client) MutualFundHolders(ctx context.Context, symbol string) (models.Holders, error) {
	s, err := c.summary(ctx, symbol, "fundOwnership")
	if err != nil {
		return nil, err
	}
	return s.FundOwnership.holders(), nil
}

func (c *Client) InsiderTransactions(ctx context.Context, symbol string) (models.InsiderTransactions, error) {
	s, err := c.summary(ctx, symbol, "insiderTransactions")
	if err != nil {
		return nil, err
	}
	out := models.InsiderTransactions{}
	if s.InsiderTransactions == nil {
		return out, nil
	}
	for _, t := range s.InsiderTransactions.Transactions {
		out = append(out, models.InsiderTransaction{
			StartDate:   t.StartDate.unix(),
			Insider:     t.FilerName,
			Position:    t.FilerRelation,
			Transaction: t.TransactionText,
			Shares:      t.Shares.asUint64(),
			Value:       t.Value.value(),
			Ownership:   t.Ownership,
		})
	}
	return out, nil
}

func (c *Client) InsiderRosterHolders(ctx context.Context, symbol string) (models.InsiderRoster, error) {
	s, err := c.summary(ctx, symbol, "insiderHolders")
	if err != nil {
		return nil, err
	}
	out := models.InsiderRoster{}
	if s.InsiderHolders == nil {
		return out, nil
	}
	for _, h := range s.InsiderHolders.Holders {
		out = append(out, models.InsiderRosterHolder{
			Name:                  h.Name,
			Position:              h.Relation,
			MostRecentTransaction: h.TransactionDescription,
			LatestTransactionDate: h.LatestTransDate.asInt64(),
			SharesOwnedDirectly:   h.PositionDirect.asUint64(),
		})
	}
	return out, nil
}
