package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/handrank/internal/census"
	"github.com/lox/handrank/poker"
)

// CensusCmd classifies all C(52,5) hands.
type CensusCmd struct {
	Workers int `short:"w" help:"Number of workers (0 = config value, then one per CPU)"`

	clock quartz.Clock `kong:"-"`
}

func (cmd *CensusCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	workers := cmd.Workers
	if workers <= 0 {
		workers = e.cfg.Census.Workers
	}
	clock := cmd.clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := census.NewRunner(e.logger, clock, workers)
	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("hands"),
		headerStyle.Render("frequency"),
		headerStyle.Render("strongest"))

	for _, c := range poker.Categories {
		strongest := "."
		if res.Seen(c) {
			strongest = e.formatHand(res.Strongest[c])
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			categoryStyle.Render(c.String()),
			res.Counts[c],
			percentStyle.Render(fmt.Sprintf("%.4f%%", res.Frequency(c)*100)),
			handStyle.Render(strongest))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(e.out, "\n%d hands by %d workers in %v\n", res.Total(), res.Workers, res.Elapsed.Truncate(time.Millisecond))
	return nil
}
