package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"FinFrame/internal/domain/models"
	"FinFrame/internal/usecase"
	"FinFrame/pkg/frame"
	xhttp "FinFrame/pkg/http"
	xlogger "FinFrame/pkg/logger"
)

// TickerEchoHandler serves the Ticker API over HTTP. Tables are returned as
// {"schema": [...], "data": [[...]]} inside the standard envelope.
type TickerEchoHandler struct {
	logger  *xlogger.Logger
	tickers *usecase.Tickers
}

func NewTickerEchoHandler(logger *xlogger.Logger, tickers *usecase.Tickers) *TickerEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &TickerEchoHandler{logger: logger, tickers: tickers}
}

func (h *TickerEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/tickers/:symbol")
	g.GET("", h.Describe)
	g.GET("/history", h.History)
	g.GET("/info", h.Info)
	g.GET("/fast_info", h.FastInfo)
	g.GET("/isin", h.ISIN)
	g.GET("/earnings", h.Earnings)
	g.GET("/calendar", h.Calendar)
	g.GET("/options", h.Options)
	g.GET("/option_chain", h.OptionChain)
	for _, name := range usecase.TableNames() {
		g.GET("/"+name, h.table(name))
	}
}

func (h *TickerEchoHandler) symbol(c echo.Context) (*usecase.Ticker, bool, error) {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return nil, false, xhttp.BadRequestResponse(c, verr)
	}
	return h.tickers.Ticker(req.Symbol), true, nil
}

func (h *TickerEchoHandler) fail(c echo.Context, op string, err error) error {
	h.logger.Error("ticker usecase error",
		xlogger.String("op", op),
		xlogger.String("symbol", c.Param("symbol")),
		xlogger.Error(err),
	)
	return xhttp.AppErrorResponse(c, err)
}

func tableResponse(c echo.Context, symbol string, tbl *frame.Table) error {
	return xhttp.SuccessResponse(c, xhttp.TableResponse{Symbol: symbol, Table: tbl})
}

func (h *TickerEchoHandler) Describe(c echo.Context) error {
	tk, ok, err := h.symbol(c)
	if !ok {
		return err
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"ticker": tk.String(),
		"tables": usecase.TableNames(),
	})
}

func (h *TickerEchoHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	tk := h.tickers.Ticker(req.Symbol)

	// validated as booleans above
	prepost, _ := strconv.ParseBool(req.Prepost)
	autoAdjust, _ := strconv.ParseBool(req.AutoAdjust)
	actions, _ := strconv.ParseBool(req.Actions)

	tbl, err := tk.History(usecase.HistoryParams{
		Period:     req.Period,
		Interval:   req.Interval,
		Start:      req.Start,
		End:        req.End,
		Prepost:    prepost,
		AutoAdjust: autoAdjust,
		Actions:    actions,
	})
	if err != nil {
		return h.fail(c, "history", err)
	}
	return tableResponse(c, tk.Symbol(), tbl)
}

func (h *TickerEchoHandler) table(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		tk, ok, err := h.symbol(c)
		if !ok {
			return err
		}
		tbl, err := tk.Table(name)
		if err != nil {
			return h.fail(c, name, err)
		}
		return tableResponse(c, tk.Symbol(), tbl)
	}
}

func (h *TickerEchoHandler) keyValue(op string, fn func(*usecase.Ticker) (map[string]any, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		tk, ok, err := h.symbol(c)
		if !ok {
			return err
		}
		res, err := fn(tk)
		if err != nil {
			return h.fail(c, op, err)
		}
		return xhttp.SuccessResponse(c, res)
	}
}

func (h *TickerEchoHandler) Info(c echo.Context) error {
	return h.keyValue("info", (*usecase.Ticker).Info)(c)
}

func (h *TickerEchoHandler) FastInfo(c echo.Context) error {
	return h.keyValue("fast_info", (*usecase.Ticker).FastInfo)(c)
}

func (h *TickerEchoHandler) Earnings(c echo.Context) error {
	return h.keyValue("earnings", (*usecase.Ticker).Earnings)(c)
}

func (h *TickerEchoHandler) Calendar(c echo.Context) error {
	return h.keyValue("calendar", (*usecase.Ticker).Calendar)(c)
}

func (h *TickerEchoHandler) ISIN(c echo.Context) error {
	tk, ok, err := h.symbol(c)
	if !ok {
		return err
	}
	isin, err := tk.ISIN()
	if err != nil {
		return h.fail(c, "isin", err)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{"symbol": tk.Symbol(), "isin": isin})
}

func (h *TickerEchoHandler) Options(c echo.Context) error {
	tk, ok, err := h.symbol(c)
	if !ok {
		return err
	}
	dates, err := tk.Options()
	if err != nil {
		return h.fail(c, "options", err)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{"symbol": tk.Symbol(), "expirations": dates})
}

func (h *TickerEchoHandler) OptionChain(c echo.Context) error {
	req := &models.OptionChainRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	tk := h.tickers.Ticker(req.Symbol)

	calls, puts, err := tk.OptionChain(req.Date)
	if err != nil {
		return h.fail(c, "option_chain", err)
	}
	return xhttp.SuccessResponse(c, xhttp.OptionChainResponse{
		Symbol: tk.Symbol(),
		Date:   req.Date,
		Calls:  calls,
		Puts:   puts,
	})
}
