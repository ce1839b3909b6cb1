package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// ErrInvalidHandSize is returned when a hand is built from anything other than
// HandSize cards.
var ErrInvalidHandSize = errors.New("a poker hand must contain five cards")

// Hand is an immutable five-card hand. Cards are held in descending order
// (rank first, suit second) from construction onwards.
//
// Duplicate cards are not detected; callers supply five cards from one deck.
type Hand struct {
	cards [HandSize]Card
}

// NewHand builds a hand from exactly five cards.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	var h Hand
	copy(h.cards[:], cards)
	slices.SortFunc(h.cards[:], func(a, b Card) int {
		return b.Compare(a)
	})
	return h, nil
}

// ParseHand parses card notation such as "AsKsQsJsTs" into a hand.
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// MustParseHand parses a hand and panics on error (for tests and fixtures)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Cards returns the cards in descending order.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards[:])
}

// HighCard returns the strongest card in the hand.
func (h Hand) HighCard() Card {
	return h.cards[0]
}

// IsStraight reports whether every adjacent pair of cards differs by exactly
// one rank. An ace only ever plays high, so A-2-3-4-5 is not a straight.
func (h Hand) IsStraight() bool {
	for i := 0; i < HandSize-1; i++ {
		if h.cards[i].Difference(h.cards[i+1]) != 1 {
			return false
		}
	}
	return true
}

// IsFlush reports whether all cards share one suit.
func (h Hand) IsFlush() bool {
	suit := h.cards[0].Suit
	for _, c := range h.cards[1:] {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

// GroupCategory returns the strongest category that can be deduced from rank
// groupings alone. Straights and flushes are ignored, so a royal flush
// reports HighCard.
func (h Hand) GroupCategory() Category {
	g := groupRanks(h)
	switch {
	case g.hasQuad:
		return FourOfAKind
	case g.hasTrips && len(g.pairs) > 0:
		return FullHouse
	case g.hasTrips:
		return ThreeOfAKind
	case len(g.pairs) == 2:
		return TwoPair
	case len(g.pairs) == 1:
		return Pair
	default:
		return HighCard
	}
}

// Evaluate classifies the hand.
func (h Hand) Evaluate() HandRanking {
	return Evaluate(h)
}

// Compare compares two hands by their rankings. It returns -1 if h is weaker,
// 0 if the hands tie and +1 if h is stronger.
func (h Hand) Compare(other Hand) int {
	return Evaluate(h).Compare(Evaluate(other))
}

// String returns the cards in descending order separated by spaces.
func (h Hand) String() string {
	parts := make([]string, HandSize)
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Symbol is String with suit symbols.
func (h Hand) Symbol() string {
	parts := make([]string, HandSize)
	for i, c := range h.cards {
		parts[i] = c.Symbol()
	}
	return strings.Join(parts, " ")
}
