package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	ops         int
	appendRatio float64
	seed        int64
	initialCap  int
	configFile  string
	plotHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "listbench",
		Short: "dynamic array growth and shrink profiler",
	}

	rootCmd.PersistentFlags().IntVar(&plotHeight, "height", 10, "plot height in rows")

	growCmd := &cobra.Command{
		Use:   "grow",
		Short: "profile the append growth policy",
		RunE:  runGrow,
	}
	growCmd.Flags().IntVar(&ops, "ops", DefaultOps, "number of appends")
	growCmd.Flags().IntVar(&initialCap, "cap", 0, "initial capacity")

	churnCmd := &cobra.Command{
		Use:   "churn",
		Short: "profile a mixed append/pop workload",
		RunE:  runChurn,
	}
	churnCmd.Flags().IntVar(&ops, "ops", DefaultOps, "number of operations")
	churnCmd.Flags().Float64Var(&appendRatio, "ratio", DefaultAppendRatio, "fraction of operations that append")
	churnCmd.Flags().Int64Var(&seed, "seed", DefaultSeed, "random seed")
	churnCmd.Flags().IntVar(&initialCap, "cap", 0, "initial capacity")
	churnCmd.Flags().StringVar(&configFile, "config", "", "workload config file (yaml)")

	rootCmd.AddCommand(growCmd, churnCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGrow(cmd *cobra.Command, args []string) error {
	if ops <= 0 {
		return fmt.Errorf("ops must be positive, got %d", ops)
	}
	r := RunGrow(ops, initialCap)
	plotResult(r, "capacity staircase")
	printSummary(r)
	return nil
}

func runChurn(cmd *cobra.Command, args []string) error {
	cfg := DefaultConfig()
	if configFile != "" {
		loaded, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	r := RunChurn(cfg)
	plotResult(r, "capacity under churn")
	printSummary(r)
	return nil
}

// applyFlags overrides config values with any flag the user set
// explicitly, so flags win over the config file.
func applyFlags(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed("ops") {
		cfg.Ops = ops
	}
	if cmd.Flags().Changed("ratio") {
		cfg.AppendRatio = appendRatio
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("cap") {
		cfg.InitialCapacity = initialCap
	}
}

func plotResult(r *Result, caption string) {
	fmt.Println(asciigraph.PlotMany(
		[][]float64{r.CapSeries(), r.SizeSeries()},
		asciigraph.Height(plotHeight),
		asciigraph.Caption(caption+" (capacity vs size)"),
	))
	fmt.Println()
}

func printSummary(r *Result) {
	f := r.Final()
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "appends\t%d\n", r.Appends)
	fmt.Fprintf(w, "pops\t%d\n", r.Pops)
	fmt.Fprintf(w, "reallocations\t%d\n", r.Reallocs)
	fmt.Fprintf(w, "final size\t%d\n", f.Size)
	fmt.Fprintf(w, "final capacity\t%d\n", f.Cap)
	fmt.Fprintf(w, "overhead\t%.2fx\n", r.Overhead())
	w.Flush()
}
