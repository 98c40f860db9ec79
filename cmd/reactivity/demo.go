package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/KABBOUCHI/reactivity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"
)

type demoOptions struct {
	dedupe   bool
	metrics  bool
	events   bool
	verbose  bool
	maxDepth int
}

func demoCmd() *cobra.Command {
	var opts demoOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the signals demonstration",
		Long: `Creates two integer cells and a struct cell, derives their sum,
and prints every value as effects observe it change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			return runDemo(cmd.OutOrStdout(), logger, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dedupe, "dedupe", false, "Record each effect once per signal")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print runtime metrics when done")
	cmd.Flags().BoolVar(&opts.events, "events", false, "Log runtime lifecycle events")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every registration, run and write")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", reactivity.DefaultMaxDepth, "Maximum nesting of effect runs before a cycle is reported")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type point struct {
	value int
}

func runDemo(out io.Writer, logger *slog.Logger, opts demoOptions) (err error) {
	observers := []reactivity.Observer{reactivity.NewLogObserver(logger)}

	registry := prometheus.NewRegistry()
	if opts.metrics {
		observers = append(observers, reactivity.NewMetrics(reactivity.WithRegistry(registry)))
	}

	if opts.events {
		capitan.Hook(reactivity.ComputedUpdatedEvent, func(_ context.Context, e *capitan.Event) {
			updater, _ := reactivity.KeyEffect.From(e)
			logger.Info("computed updated", "updater", updater)
		})
		capitan.Hook(reactivity.CycleDetectedEvent, func(_ context.Context, e *capitan.Event) {
			depth, _ := reactivity.KeyDepth.From(e)
			logger.Error("cycle detected", "depth", depth)
		})
		defer capitan.Shutdown()

		observers = append(observers, reactivity.NewEventObserver(context.Background()))
	}

	reactivity.Configure(
		reactivity.WithDedupe(opts.dedupe),
		reactivity.WithMaxDepth(opts.maxDepth),
		reactivity.WithObserver(observers...),
	)
	defer reactivity.Configure()

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("demo aborted: %w", e)
		}
	}()

	a0 := reactivity.NewSignal(0)
	a1 := reactivity.NewSignal(1)
	s0 := reactivity.NewSignal(point{value: 2})

	reactivity.NewEffect(func() {
		fmt.Fprintf(out, "A0 is: %d\n", a0.Get())
	})

	a2 := reactivity.NewComputed(func() int {
		return a0.Get() + a1.Get()
	})

	reactivity.NewEffect(func() {
		fmt.Fprintf(out, "A2 is: %d\n", a2.Get())
	})

	a0.Set(2)

	reactivity.NewEffect(func() {
		fmt.Fprintf(out, "S0 is: %d\n", s0.Get().value)
	})

	s0.Set(point{value: 3})
	s0.Update(func(p point) point {
		return point{value: p.value + 1}
	})

	if opts.metrics {
		return printMetrics(out, registry)
	}

	return nil
}

func printMetrics(out io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})

	fmt.Fprintln(out)
	for _, family := range families {
		for _, m := range family.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(out, "%s %g\n", family.GetName(), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				fmt.Fprintf(out, "%s %g\n", family.GetName(), m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				fmt.Fprintf(out, "%s_count %d\n", family.GetName(), m.GetHistogram().GetSampleCount())
			}
		}
	}

	return nil
}
