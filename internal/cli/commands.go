package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"TradingJournal/config"
	"TradingJournal/internal/app"
	"TradingJournal/internal/instruments"
	"TradingJournal/internal/logger"
	"TradingJournal/internal/models"
	"TradingJournal/internal/report"
	"TradingJournal/internal/services/analytics"
	"TradingJournal/internal/services/economics"
)

// NewRootCmd creates the root command. Without a subcommand it serves the API.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "journal",
		Short: "Trading journal - trade economics and performance analytics",
		Long: `A trading journal that prices closed trades (pips, profit, risk/reward)
and aggregates them into performance analytics over a REST API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	rootCmd.PersistentFlags().String("instruments", os.Getenv("INSTRUMENTS_FILE"), "YAML file with extra instruments")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newSizeCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newInstrumentsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc SYMBOL DIRECTION ENTRY EXIT LOTS",
		Short: "Price a closed trade",
		Long: `Price a closed trade without storing it.
Example: journal calc EURUSD buy 1.1000 1.1070 1 --sl 1.0950 --tp 1.1100`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := calculatorFor(cmd)
			if err != nil {
				return err
			}
			direction, err := economics.ParseDirection(args[1])
			if err != nil {
				return err
			}
			prices, err := parseFloats(args[2:], "entry", "exit", "lots")
			if err != nil {
				return err
			}
			if !economics.IsUsableLotSize(prices[2]) {
				return fmt.Errorf("lots must be positive, got %v", prices[2])
			}

			in := economics.Input{
				Symbol:     args[0],
				Direction:  direction,
				EntryPrice: prices[0],
				ExitPrice:  prices[1],
				LotSize:    prices[2],
				StopLoss:   optionalFloat(cmd, "sl"),
				TakeProfit: optionalFloat(cmd, "tp"),
			}
			res, err := calc.CalculateProfit(cmd.Context(), in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pips:      %.1f\n", res.Pips)
			fmt.Fprintf(out, "Profit:    %.2f %s\n", res.Profit, res.Currency)
			fmt.Fprintf(out, "Pip value: %.2f\n", res.PipValue)
			if res.RRR != nil {
				fmt.Fprintf(out, "RRR:       1:%.1f\n", *res.RRR)
			}
			if !res.Converted {
				fmt.Fprintln(out, "Note: no USD leg, profit is in the quote currency")
			}
			return nil
		},
	}
	cmd.Flags().Float64("sl", 0, "Stop loss price")
	cmd.Flags().Float64("tp", 0, "Take profit price")
	return cmd
}

func newSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size SYMBOL",
		Short: "Recommend a lot size for a risk budget",
		Long: `Recommend the lot size that loses --risk percent of --balance at the stop.
Example: journal size EURUSD --balance 100000 --risk 1 --entry 1.0825 --stop 1.0800`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := calculatorFor(cmd)
			if err != nil {
				return err
			}
			balance, _ := cmd.Flags().GetFloat64("balance")
			risk, _ := cmd.Flags().GetFloat64("risk")
			entry, _ := cmd.Flags().GetFloat64("entry")
			stop, _ := cmd.Flags().GetFloat64("stop")

			lots := calc.CalculatePositionSize(args[0], balance, risk, entry, stop)
			if !economics.IsUsableLotSize(lots) {
				return fmt.Errorf("no usable lot size (got %v): entry and stop must differ and balance must be positive", lots)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f lots\n", lots)
			return nil
		},
	}
	cmd.Flags().Float64("balance", 0, "Account balance")
	cmd.Flags().Float64("risk", 1, "Risk per trade in percent")
	cmd.Flags().Float64("entry", 0, "Entry price")
	cmd.Flags().Float64("stop", 0, "Stop loss price")
	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("entry")
	_ = cmd.MarkFlagRequired("stop")
	return cmd
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a daily performance report from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := reportFilter(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			if format != "table" && format != "csv" {
				return fmt.Errorf("invalid format %q: use table or csv", format)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logger.New("ERROR", cfg.Log.Format)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx := cmd.Context()
			a, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			records, err := a.Journal.Records(ctx, filter)
			if err != nil {
				return err
			}
			days := report.Daily(records)

			out := cmd.OutOrStdout()
			if format == "csv" {
				return report.ExportCSV(out, days)
			}
			return report.PrintTable(out, days, analytics.Summarize(records), analytics.ComputeRiskMetrics(records))
		},
	}
	cmd.Flags().Uint("account", 0, "Only trades of this account id")
	cmd.Flags().String("symbol", "", "Only trades of this symbol")
	cmd.Flags().String("from", "", "First trade date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Last trade date (YYYY-MM-DD)")
	cmd.Flags().String("format", "table", "Output format: table or csv")
	return cmd
}

func newInstrumentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instruments [SYMBOL...]",
		Short: "List the pip configuration of known instruments",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := registryFor(cmd)
			if err != nil {
				return err
			}

			symbols := args
			if len(symbols) == 0 {
				registry.Each(func(symbol string, _ instruments.Info) {
					symbols = append(symbols, symbol)
				})
				sort.Strings(symbols)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "SYMBOL\tPIP DP\tUSD\tKNOWN\n")
			for _, s := range symbols {
				s = strings.ToUpper(s)
				info, known := registry.Lookup(s)
				if !known {
					info = registry.Info(s)
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%t\n", s, info.PipDecimalPlace, usdLeg(info), known)
			}
			return tw.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "journal v%s\n", app.Version)
		},
	}
}

// --- helpers ---

// loadConfig reads the environment; --instruments overrides INSTRUMENTS_FILE.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if path, _ := cmd.Flags().GetString("instruments"); path != "" {
		cfg.InstrumentsFile = path
	}
	return cfg, nil
}

func registryFor(cmd *cobra.Command) (*instruments.Registry, error) {
	path, _ := cmd.Flags().GetString("instruments")
	if path == "" {
		return instruments.Default(), nil
	}
	return instruments.LoadFile(path)
}

func calculatorFor(cmd *cobra.Command) (*economics.Calculator, error) {
	registry, err := registryFor(cmd)
	if err != nil {
		return nil, err
	}
	return economics.NewCalculator(registry, nil), nil
}

func parseFloats(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], a, err)
		}
		out[i] = v
	}
	return out, nil
}

// optionalFloat returns the flag value, or nil when it was not given.
func optionalFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func reportFilter(cmd *cobra.Command) (models.TradeFilter, error) {
	var f models.TradeFilter
	account, _ := cmd.Flags().GetUint("account")
	f.AccountID = account
	symbol, _ := cmd.Flags().GetString("symbol")
	f.Symbol = strings.ToUpper(strings.TrimSpace(symbol))

	for _, bound := range []struct {
		flag string
		dst  **time.Time
	}{{"from", &f.From}, {"to", &f.To}} {
		raw, _ := cmd.Flags().GetString(bound.flag)
		if raw == "" {
			continue
		}
		t, err := time.Parse(models.TradeDateLayout, raw)
		if err != nil {
			return f, fmt.Errorf("invalid --%s date format, use YYYY-MM-DD: %w", bound.flag, err)
		}
		*bound.dst = &t
	}
	return f, nil
}

func usdLeg(info instruments.Info) string {
	switch {
	case info.USDIsQuote:
		return "quote"
	case info.USDIsBase:
		return "base"
	}
	return "-"
}
