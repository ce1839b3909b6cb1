package census

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/poker"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// Aces only play high, so the four wheel straight flushes count as flushes
// and the 1,020 wheel straights count as high card hands.
var expectedCounts = map[poker.Category]int{
	poker.RoyalFlush:    4,
	poker.StraightFlush: 32,
	poker.FourOfAKind:   624,
	poker.FullHouse:     3744,
	poker.Flush:         5112,
	poker.Straight:      9180,
	poker.ThreeOfAKind:  54912,
	poker.TwoPair:       123552,
	poker.Pair:          1098240,
	poker.HighCard:      1303560,
}

func TestCensusCountsEveryHand(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive census skipped in short mode")
	}

	clock := quartz.NewMock(t)
	runner := NewRunner(quietLogger(), clock, 4)

	res, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, TotalHands, res.Total())
	assert.Equal(t, 4, res.Workers)
	for category, want := range expectedCounts {
		assert.Equal(t, want, res.Counts[category], category.String())
		assert.True(t, res.Seen(category), category.String())
	}

	// the mock clock never advanced
	assert.Zero(t, res.Elapsed)

	assert.Equal(t, "As Ks Qs Js Ts", res.Strongest[poker.RoyalFlush].String())
	assert.Equal(t, "Ks Qs Js Ts 9s", res.Strongest[poker.StraightFlush].String())
	assert.Equal(t, []poker.Rank{poker.Ace, poker.King}, res.Strongest[poker.FourOfAKind].Evaluate().Tiebreak())
	assert.InDelta(t, 1303560.0/2598960.0, res.Frequency(poker.HighCard), 1e-9)
}

func TestCensusCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(quietLogger(), quartz.NewReal(), 2)
	_, err := runner.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRunnerDefaultsWorkers(t *testing.T) {
	t.Parallel()
	runner := NewRunner(quietLogger(), quartz.NewReal(), 0)
	assert.Positive(t, runner.workers)
}

func TestTallyMerge(t *testing.T) {
	t.Parallel()
	pairFives := poker.MustParseHand("5c5d9hJs2c")
	pairKings := poker.MustParseHand("KcKd9hJs2c")
	flush := poker.MustParseHand("2h5h9hJhKh")

	var a, b Tally
	a.Add(pairFives, pairFives.Evaluate())
	b.Add(pairKings, pairKings.Evaluate())
	b.Add(flush, flush.Evaluate())

	a.Merge(&b)

	assert.Equal(t, 3, a.Total())
	assert.Equal(t, 2, a.Counts[poker.Pair])
	assert.Equal(t, pairKings, a.Strongest[poker.Pair])
	assert.Equal(t, flush, a.Strongest[poker.Flush])
	assert.False(t, a.Seen(poker.FullHouse))
	assert.InDelta(t, 2.0/3.0, a.Frequency(poker.Pair), 1e-9)

	var empty Tally
	assert.Zero(t, empty.Frequency(poker.Pair))
}
