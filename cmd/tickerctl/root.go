package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"FinFrame/internal/di"
	"FinFrame/internal/usecase"
	"FinFrame/pkg/config"
	"FinFrame/pkg/frame"
	applogger "FinFrame/pkg/logger"
)

type tickersFunc func(cmd *cobra.Command) (*usecase.Tickers, error)

type globalFlags struct {
	configPath string
	logLevel   string
	asJSON     bool
}

// newRootCmd builds the command tree. A nil source wires tickers from config.
func newRootCmd(source tickersFunc) *cobra.Command {
	g := &globalFlags{}
	if source == nil {
		source = g.tickers
	}

	root := &cobra.Command{
		Use:           "tickerctl",
		Short:         "Query market data for a ticker symbol as tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "config/config.yaml", "config file path")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level")
	root.PersistentFlags().BoolVar(&g.asJSON, "json", false, "print JSON instead of text tables")

	root.AddCommand(
		historyCmd(source, g),
		tableCmd(source, g),
		keyValueCmd("info", "Quote summary fields", (*usecase.Ticker).Info, source, g),
		keyValueCmd("fast-info", "Compact quote fields", (*usecase.Ticker).FastInfo, source, g),
		keyValueCmd("earnings", "Earnings record counts", (*usecase.Ticker).Earnings, source, g),
		keyValueCmd("calendar", "Upcoming earnings and dividend dates", (*usecase.Ticker).Calendar, source, g),
		isinCmd(source, g),
		optionsCmd(source, g),
		chainCmd(source, g),
	)
	return root
}

func (g *globalFlags) tickers(cmd *cobra.Command) (*usecase.Tickers, error) {
	cfg, err := config.LoadWithEnv(g.configPath)
	if err != nil {
		return nil, err
	}
	l, err := applogger.New(&applogger.Config{Level: g.logLevel, Format: "console", Output: "stderr"})
	if err != nil {
		return nil, err
	}
	return di.InitializeTickers(cfg, l)
}

func ticker(source tickersFunc, cmd *cobra.Command, symbol string) (*usecase.Ticker, error) {
	ts, err := source(cmd)
	if err != nil {
		return nil, err
	}
	return ts.Ticker(symbol), nil
}

func historyCmd(source tickersFunc, g *globalFlags) *cobra.Command {
	p := usecase.DefaultHistoryParams()
	cmd := &cobra.Command{
		Use:   "history SYMBOL",
		Short: "Price history with optional dividends and splits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ticker(source, cmd, args[0])
			if err != nil {
				return err
			}
			tbl, err := tk.History(p)
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), tbl, g.asJSON)
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Period, "period", p.Period, "range token, e.g. 1d 5d 1mo 1y max")
	f.StringVar(&p.Interval, "interval", p.Interval, "interval token, e.g. 1m 1h 1d 1wk")
	f.StringVar(&p.Start, "start", "", "start date (accepted, not applied)")
	f.StringVar(&p.End, "end", "", "end date (accepted, not applied)")
	f.BoolVar(&p.Prepost, "prepost", p.Prepost, "include pre and post market bars")
	f.BoolVar(&p.AutoAdjust, "auto-adjust", p.AutoAdjust, "adjust prices for splits and dividends")
	f.BoolVar(&p.Actions, "actions", p.Actions, "add dividends and stock splits columns")
	return cmd
}

func tableCmd(source tickersFunc, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "table SYMBOL NAME",
		Short:     "Print one named table",
		Long:      fmt.Sprintf("Print one named table. Names: %v", usecase.TableNames()),
		Args:      cobra.ExactArgs(2),
		ValidArgs: usecase.TableNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ticker(source, cmd, args[0])
			if err != nil {
				return err
			}
			tbl, err := tk.Table(args[1])
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), tbl, g.asJSON)
		},
	}
}

func keyValueCmd(use, short string, fn func(*usecase.Ticker) (map[string]any, error), source tickersFunc, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   use + " SYMBOL",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ticker(source, cmd, args[0])
			if err != nil {
				return err
			}
			m, err := fn(tk)
			if err != nil {
				return err
			}
			if g.asJSON {
				return printJSON(cmd.OutOrStdout(), m)
			}
			printKeyValues(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func isinCmd(source tickersFunc, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "isin SYMBOL",
		Short: "International Securities Identification Number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ticker(source, cmd, args[0])
			if err != nil {
				return err
			}
			isin, err := tk.ISIN()
			if err != nil {
				return err
			}
			if g.asJSON {
				return printJSON(cmd.OutOrStdout(), isin)
			}
			if isin == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "-")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), *isin)
			return nil
		},
	}
}

func optionsCmd(source tickersFunc, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "options SYMBOL",
		Short: "Listed option expiration dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ticker(source, cmd, args[0])
			if err != nil {
				return err
			}
			dates, err := tk.Options()
			if err != nil {
				return err
			}
			if g.asJSON {
				return printJSON(cmd.OutOrStdout(), dates)
			}
			for _, d := range dates {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}

func chainCmd(source tickersFunc, g *globalFlags) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "chain SYMBOL",
		Short: "Calls and puts for one expiration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ticker(source, cmd, args[0])
			if err != nil {
				return err
			}
			calls, puts, err := tk.OptionChain(date)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if g.asJSON {
				return printJSON(w, map[string]*frame.Table{"calls": calls, "puts": puts})
			}
			fmt.Fprintln(w, "calls")
			calls.Render(w)
			fmt.Fprintln(w, "puts")
			puts.Render(w)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "expiration date YYYY-MM-DD, nearest when empty")
	return cmd
}

func printTable(w io.Writer, tbl *frame.Table, asJSON bool) error {
	if asJSON {
		return printJSON(w, tbl)
	}
	tbl.Render(w)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printKeyValues(w io.Writer, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"key", "value"})
	for _, k := range keys {
		tw.Append([]string{k, fmt.Sprint(m[k])})
	}
	tw.Render()
}
