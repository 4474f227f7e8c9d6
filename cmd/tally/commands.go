package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/on-the-ground/tally/desk"
	"github.com/on-the-ground/tally/forecast"
	"github.com/on-the-ground/tally/record"
	"github.com/on-the-ground/tally/search"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		id       int
		name     string
		category string
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Look a record up in the sample catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			catalog := sampleCatalog()

			switch {
			case cmd.Flags().Changed("id"):
				printResult(out, "linear", search.Linear(catalog, id))
				printResult(out, "binary", search.FindID(record.NewCollection(catalog, record.ByID), id))
			case name != "":
				printResult(out, "binary-by-name", search.FindName(record.NewCollection(catalog, record.ByName), name))
			case category != "":
				for _, r := range search.ByCategory(catalog, category) {
					fmt.Fprintln(out, r)
				}
			default:
				return errors.New("one of --id, --name or --category is required")
			}
			a.logger.Debug("search done", zap.Int("catalog_size", len(catalog)))
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "record identifier")
	cmd.Flags().StringVar(&name, "name", "", "record name (case-insensitive)")
	cmd.Flags().StringVar(&category, "category", "", "list records of a category")
	return cmd
}

func printResult(out io.Writer, strategy string, res search.Result) {
	if !res.Found {
		fmt.Fprintf(out, "%-15s not found after %d comparisons\n", strategy, res.Comparisons)
		return
	}
	fmt.Fprintf(out, "%-15s found after %d comparisons: %s\n", strategy, res.Comparisons, res.Record)
}

func newForecastCmd(a *app) *cobra.Command {
	var (
		value float64
		rate  float64
		steps int
	)
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Compound a value at a fixed rate, naive and memoized",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := a.newCache()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			naive := forecast.Evaluate(value, rate, steps)
			memoized := forecast.EvaluateMemoized(value, rate, steps, cache)
			fmt.Fprintf(out, "naive:    %.2f\n", naive)
			fmt.Fprintf(out, "memoized: %.2f (cache size %d)\n", memoized, cache.Size())

			forecast.EvaluateMemoized(value, rate, steps, cache)
			st := cache.Stats()
			fmt.Fprintf(out, "repeat:   cache size %d, hits %d, misses %d\n", cache.Size(), st.Hits, st.Misses)
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 10000, "starting value")
	cmd.Flags().Float64Var(&rate, "rate", 5, "growth rate per period, in percent")
	cmd.Flags().IntVar(&steps, "steps", 10, "number of periods")
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Forecast from the sample history at its average growth rate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := sampleHistory()
			if err != nil {
				return err
			}
			cache, err := a.newCache()
			if err != nil {
				return err
			}
			points, err := forecast.Schedule(history, steps, cache)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, o := range history {
				fmt.Fprintf(out, "     %s  %12.2f  recorded %.2f%%\n", o.Date, o.Value, o.Rate)
			}
			fmt.Fprintf(out, "average growth rate: %.2f%%\n", forecast.AverageGrowthRate(history))
			for _, p := range points {
				fmt.Fprintf(out, "%3d  %s  %12.2f  %+10.2f\n", p.Period, p.Date, p.Value, p.Growth)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 6, "number of periods to forecast")
	return cmd
}

func newRatesCmd(*app) *cobra.Command {
	var (
		value float64
		rates []float64
	)
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Compound a value through a sequence of rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", forecast.VariableRates(value, rates))
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 10000, "starting value")
	cmd.Flags().Float64SliceVar(&rates, "rate", []float64{5.0, 6.0, 4.5, 7.2, 3.8}, "per-period rates, in order")
	return cmd
}

func newReachCmd(*app) *cobra.Command {
	var value, target, rate float64
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "Count the periods needed to reach a target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if p, ok := forecast.PeriodsToReach(value, target, rate, 0); ok {
				fmt.Fprintf(out, "%d periods\n", p)
				return nil
			}
			fmt.Fprintln(out, "unreachable")
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 10000, "starting value")
	cmd.Flags().Float64Var(&target, "target", 20000, "target value")
	cmd.Flags().Float64Var(&rate, "rate", 5, "growth rate per period, in percent")
	return cmd
}

func newDeskCmd(a *app) *cobra.Command {
	var (
		series []string
		steps  int
		rate   float64
	)
	cmd := &cobra.Command{
		Use:   "desk",
		Short: "Serve forecasts for several series through the worker desk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.cfg.DeskOptions()
			if err != nil {
				return err
			}
			d, err := desk.New(cmd.Context(), opts, a.logger)
			if err != nil {
				return err
			}
			defer d.Close()

			out := cmd.OutOrStdout()
			for i, s := range series {
				resp, err := d.Submit(cmd.Context(), desk.NewRequest(s, 1000*float64(i+1), rate, steps))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s %12.2f  (worker cache %d)\n", resp.Series, resp.Value, resp.CacheSize)
			}
			fmt.Fprintf(out, "total cached states: %d\n", d.CacheSize())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&series, "series", []string{"revenue", "costs", "users"}, "series names")
	cmd.Flags().IntVar(&steps, "steps", 12, "number of periods")
	cmd.Flags().Float64Var(&rate, "rate", 4, "growth rate per period, in percent")
	return cmd
}


func newLatticeCmd(a *app) *cobra.Command {
	var (
		value    float64
		upRate   float64
		downRate float64
		steps    int
	)
	cmd := &cobra.Command{
		Use:   "lattice",
		Short: "Compare naive and memoized cost of an up/down scenario tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := a.newCache()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			naive := forecast.ExpectedValue(value, upRate, downRate, steps)
			naiveCalls := uint64(1)<<(max(steps, 0)+1) - 1
			fmt.Fprintf(out, "naive:    %.2f (%d calls)\n", naive, naiveCalls)

			memoized := forecast.ExpectedValueMemoized(value, upRate, downRate, steps, cache)
			st := cache.Stats()
			fmt.Fprintf(out, "memoized: %.2f (%d calls, %d states)\n", memoized, st.Hits+st.Misses, cache.Size())
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 1000, "starting value")
	cmd.Flags().Float64Var(&upRate, "up", 10, "growth rate of the up branch, in percent")
	cmd.Flags().Float64Var(&downRate, "down", -5, "growth rate of the down branch, in percent")
	cmd.Flags().IntVar(&steps, "steps", 16, "depth of the tree")
	return cmd
}
