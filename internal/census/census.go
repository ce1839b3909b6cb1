// Package census classifies every five-card hand in a deck and tallies the
// categories. The work is split by each hand's lowest card so workers never
// share state; partial tallies are merged once all workers finish.
package census

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handrank/poker"
)

// TotalHands is C(52,5).
const TotalHands = 2598960

// Tally holds per-category counts and the strongest hand seen in each category.
type Tally struct {
	Counts    [poker.RoyalFlush + 1]int
	Strongest [poker.RoyalFlush + 1]poker.Hand
	best      [poker.RoyalFlush + 1]poker.HandRanking
	seen      [poker.RoyalFlush + 1]bool
}

// Add records one evaluated hand.
func (t *Tally) Add(h poker.Hand, r poker.HandRanking) {
	c := r.Category()
	t.Counts[c]++
	if !t.seen[c] || r.IsStrongerThan(t.best[c]) {
		t.best[c], t.Strongest[c], t.seen[c] = r, h, true
	}
}

// Merge folds other into t.
func (t *Tally) Merge(other *Tally) {
	for c := range t.Counts {
		t.Counts[c] += other.Counts[c]
		if !other.seen[c] {
			continue
		}
		if !t.seen[c] || other.best[c].IsStrongerThan(t.best[c]) {
			t.best[c], t.Strongest[c], t.seen[c] = other.best[c], other.Strongest[c], true
		}
	}
}

// Total returns the number of hands recorded.
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.Counts {
		total += n
	}
	return total
}

// Seen reports whether any hand of category c was recorded.
func (t *Tally) Seen(c poker.Category) bool {
	return t.seen[c]
}

// Frequency returns the share of recorded hands in category c.
func (t *Tally) Frequency(c poker.Category) float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t.Counts[c]) / float64(total)
}

// Result is the outcome of a census run.
type Result struct {
	Tally
	Workers int
	Elapsed time.Duration
}

// Runner runs a census across a pool of workers.
type Runner struct {
	logger  *log.Logger
	clock   quartz.Clock
	workers int
}

// NewRunner creates a runner. A workers value <= 0 uses one worker per CPU.
func NewRunner(logger *log.Logger, clock quartz.Clock, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		logger:  logger,
		clock:   clock,
		workers: workers,
	}
}

// Run classifies all C(52,5) hands.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := r.clock.Now()
	deck := poker.NewDeck()

	jobs := make(chan int)
	results := make(chan *Tally, r.workers)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for first := 0; first <= poker.DeckSize-poker.HandSize; first++ {
			select {
			case jobs <- first:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < r.workers; w++ {
		g.Go(func() error {
			tally := &Tally{}
			for first := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				n := 0
				deck.EachHandFrom(first, func(h poker.Hand) bool {
					tally.Add(h, h.Evaluate())
					n++
					return true
				})
				r.logger.Debug("Census slice done", "worker", w, "first", deck[first], "hands", n)
			}

			select {
			case results <- tally:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("census: %w", err)
	}
	close(results)

	res := &Result{Workers: r.workers}
	for tally := range results {
		res.Merge(tally)
	}
	res.Elapsed = r.clock.Since(start)

	if total := res.Total(); total != TotalHands {
		return nil, fmt.Errorf("census: classified %d hands, want %d", total, TotalHands)
	}

	r.logger.Info("Census complete", "hands", res.Total(), "workers", r.workers, "elapsed", res.Elapsed)
	return res, nil
}
