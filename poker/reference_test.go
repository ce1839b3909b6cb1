package poker

import (
	"math/rand/v2"
	"testing"

	ref "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceScore scores a hand with an independent evaluator. Higher scores
// are stronger and suits never break ties.
func referenceScore(t *testing.T, h Hand) int16 {
	t.Helper()
	var cards [HandSize]ref.Card
	for i, c := range h.Cards() {
		rank := ref.Rank(c.Rank)
		if c.Rank == Ace {
			rank = 1
		}
		card, err := ref.MakeCard(ref.Suit(c.Suit), rank)
		require.NoError(t, err)
		cards[i] = card
	}
	return ref.Eval5(&cards)
}

// isWheel reports whether the hand holds A-5-4-3-2, which the reference scores
// as a straight and this package does not.
func isWheel(h Hand) bool {
	cards := h.Cards()
	want := []Rank{Ace, Five, Four, Three, Two}
	for i, c := range cards {
		if c.Rank != want[i] {
			return false
		}
	}
	return true
}

func randomHand(rng *rand.Rand, deck Deck) Hand {
	perm := rng.Perm(DeckSize)
	cards := make([]Card, HandSize)
	for i := range cards {
		cards[i] = deck[perm[i]]
	}
	h, _ := NewHand(cards...)
	return h
}

func TestEvaluateAgreesWithReference(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(42, 7))
	deck := NewDeck()

	samples := 20000
	if testing.Short() {
		samples = 2000
	}

	for i := 0; i < samples; i++ {
		a, b := randomHand(rng, deck), randomHand(rng, deck)
		if isWheel(a) || isWheel(b) {
			continue
		}

		ra, rb := a.Evaluate(), b.Evaluate()
		sa, sb := referenceScore(t, a), referenceScore(t, b)

		switch {
		case sa > sb:
			assert.Equal(t, 1, ra.Compare(rb), "%s vs %s", a, b)
		case sa < sb:
			assert.Equal(t, -1, ra.Compare(rb), "%s vs %s", a, b)
		default:
			assert.Equal(t, ra.Category(), rb.Category(), "%s vs %s", a, b)
			assert.Equal(t, ra.Tiebreak(), rb.Tiebreak(), "%s vs %s", a, b)
		}
	}
}
