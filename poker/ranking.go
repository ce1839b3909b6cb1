package poker

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Category is the class of a hand. Values increase with strength.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest.
var Categories = []Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, Pair, HighCard,
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Compare returns -1 if c is weaker than other, 0 if equal, 1 if stronger.
func (c Category) Compare(other Category) int {
	return cmp.Compare(c, other)
}

// MaxCategory returns the stronger of two categories.
func MaxCategory(a, b Category) Category {
	return max(a, b)
}

// HandRanking is the comparison key for a hand: a category, an ordered run of
// tiebreak ranks (most decisive first) and, for categories without any rank
// grouping, the suit of the high card as the last resort.
//
// The zero value is a high card hand with no tiebreak ranks. HandRanking is
// comparable with ==.
type HandRanking struct {
	category Category
	ranks    [HandSize]Rank
	n        uint8
	suit     Suit
	hasSuit  bool
}

func newRanking(category Category, ranks ...Rank) HandRanking {
	r := HandRanking{category: category}
	r.n = uint8(copy(r.ranks[:], ranks))
	return r
}

func (r HandRanking) withSuit(s Suit) HandRanking {
	r.suit = s
	r.hasSuit = true
	return r
}

// Category returns the hand category.
func (r HandRanking) Category() Category {
	return r.category
}

// Tiebreak returns the tiebreak ranks, most decisive first.
func (r HandRanking) Tiebreak() []Rank {
	return slices.Clone(r.ranks[:r.n])
}

// Suit returns the suit tiebreak, if this ranking carries one.
func (r HandRanking) Suit() (Suit, bool) {
	return r.suit, r.hasSuit
}

// Compare returns -1 if r is weaker than other, 0 if they tie and 1 if r is
// stronger. Categories are compared first, then tiebreak ranks position by
// position, then suits when both rankings carry one.
func (r HandRanking) Compare(other HandRanking) int {
	if c := r.category.Compare(other.category); c != 0 {
		return c
	}

	n := min(r.n, other.n)
	for i := uint8(0); i < n; i++ {
		if c := cmp.Compare(r.ranks[i], other.ranks[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(r.n, other.n); c != 0 {
		return c
	}

	if r.hasSuit && other.hasSuit {
		return cmp.Compare(r.suit, other.suit)
	}
	return 0
}

// IsStrongerThan returns true if this ranking beats the other
func (r HandRanking) IsStrongerThan(other HandRanking) bool {
	return r.Compare(other) > 0
}

// IsWeakerThan returns true if this ranking loses to the other
func (r HandRanking) IsWeakerThan(other HandRanking) bool {
	return r.Compare(other) < 0
}

// Equals returns true if both rankings are equal in strength
func (r HandRanking) Equals(other HandRanking) bool {
	return r.Compare(other) == 0
}

// String returns the category followed by the tiebreak ranks and suit,
// e.g. "Two Pair [5 2 6]" or "Royal Flush [A] s".
func (r HandRanking) String() string {
	ranks := make([]string, r.n)
	for i, rank := range r.ranks[:r.n] {
		ranks[i] = rank.String()
	}
	s := fmt.Sprintf("%s [%s]", r.category, strings.Join(ranks, " "))
	if r.hasSuit {
		s += " " + r.suit.String()
	}
	return s
}

// Description returns a readable description such as "Two Pair, Fives and Twos".
func (r HandRanking) Description() string {
	if r.n == 0 {
		return r.category.String()
	}

	top := r.ranks[0]
	switch r.category {
	case RoyalFlush:
		if r.hasSuit {
			return "Royal Flush in " + r.suit.Name()
		}
		return "Royal Flush"
	case StraightFlush, Straight, Flush:
		return fmt.Sprintf("%s, %s high", r.category, top.Name())
	case FourOfAKind:
		return "Four of a Kind, " + top.Plural()
	case FullHouse:
		if r.n > 1 {
			return fmt.Sprintf("Full House, %s full of %s", top.Plural(), r.ranks[1].Plural())
		}
	case ThreeOfAKind:
		return "Three of a Kind, " + top.Plural()
	case TwoPair:
		if r.n > 1 {
			return fmt.Sprintf("Two Pair, %s and %s", top.Plural(), r.ranks[1].Plural())
		}
	case Pair:
		return "Pair of " + top.Plural()
	case HighCard:
		return "High Card, " + top.Name()
	}
	return r.category.String()
}

// Explain compares two rankings and returns the result with an explanation.
func Explain(a, b HandRanking) (int, string) {
	result := a.Compare(b)
	if result == 0 {
		return result, "hands tie"
	}

	winner, loser := a, b
	if result < 0 {
		winner, loser = b, a
	}

	explanation := fmt.Sprintf("%s beats %s", winner.Description(), loser.Description())
	if winner.category != loser.category {
		return result, explanation
	}

	for i := uint8(0); i < min(winner.n, loser.n); i++ {
		w, l := winner.ranks[i], loser.ranks[i]
		if w == l {
			continue
		}
		return result, fmt.Sprintf("%s (%s: %s vs %s)", explanation, tiebreakLabel(winner.category, int(i)), w, l)
	}

	return result, fmt.Sprintf("%s (suit: %s vs %s)", explanation, winner.suit.Name(), loser.suit.Name())
}

// tiebreakLabel names the role of tiebreak position i for a category.
func tiebreakLabel(c Category, i int) string {
	switch c {
	case FourOfAKind:
		if i == 0 {
			return "higher quads"
		}
	case FullHouse:
		if i == 0 {
			return "higher trips"
		}
		return "higher pair"
	case ThreeOfAKind:
		if i == 0 {
			return "higher trips"
		}
	case TwoPair:
		switch i {
		case 0:
			return "higher top pair"
		case 1:
			return "higher bottom pair"
		}
	case Pair:
		if i == 0 {
			return "higher pair"
		}
	case Straight, StraightFlush, RoyalFlush:
		return "higher straight"
	case Flush, HighCard:
		if i == 0 {
			return "higher card"
		}
	}
	return "higher kicker"
}
