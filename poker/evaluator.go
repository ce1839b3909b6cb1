package poker

// rankGroups partitions a hand's ranks by how often they occur. pairs and
// singles are in descending rank order.
type rankGroups struct {
	quad     Rank
	hasQuad  bool
	trips    Rank
	hasTrips bool
	pairs    []Rank
	singles  []Rank
}

// groupRanks counts each rank and partitions the ranks by count. Walking the
// ranks from Ace down keeps pairs and singles sorted strongest first.
func groupRanks(h Hand) rankGroups {
	var counts [Ace + 1]uint8
	for _, c := range h.cards {
		if c.Rank.Valid() {
			counts[c.Rank]++
		}
	}

	g := rankGroups{
		pairs:   make([]Rank, 0, 2),
		singles: make([]Rank, 0, HandSize),
	}
	for r := Ace; r >= Two; r-- {
		switch counts[r] {
		case 4:
			g.quad, g.hasQuad = r, true
		case 3:
			g.trips, g.hasTrips = r, true
		case 2:
			g.pairs = append(g.pairs, r)
		case 1:
			g.singles = append(g.singles, r)
		}
	}
	return g
}

// Evaluate classifies a hand and returns its comparison key.
//
// Rank groupings are checked first (quads, full house, trips, two pair, pair).
// Only a hand of five distinct ranks can be a straight or flush, and those
// categories carry the high card's suit as their final tiebreak.
func Evaluate(h Hand) HandRanking {
	g := groupRanks(h)

	switch {
	case g.hasQuad:
		return newRanking(FourOfAKind, append([]Rank{g.quad}, g.singles...)...)
	case g.hasTrips && len(g.pairs) > 0:
		return newRanking(FullHouse, append([]Rank{g.trips}, g.pairs...)...)
	case g.hasTrips:
		return newRanking(ThreeOfAKind, append([]Rank{g.trips}, g.singles...)...)
	case len(g.pairs) == 2:
		return newRanking(TwoPair, append(g.pairs, g.singles...)...)
	case len(g.pairs) == 1:
		return newRanking(Pair, append([]Rank{g.pairs[0]}, g.singles...)...)
	}

	return evaluateDistinct(h)
}

// evaluateDistinct handles hands without any rank grouping.
func evaluateDistinct(h Hand) HandRanking {
	high := h.HighCard()
	straight, flush := h.IsStraight(), h.IsFlush()

	switch {
	case straight && flush && high.Rank == Ace:
		return newRanking(RoyalFlush, high.Rank).withSuit(high.Suit)
	case straight && flush:
		return newRanking(StraightFlush, high.Rank).withSuit(high.Suit)
	case flush:
		return newRanking(Flush, handRanks(h)...).withSuit(high.Suit)
	case straight:
		return newRanking(Straight, handRanks(h)...).withSuit(high.Suit)
	default:
		return newRanking(HighCard, handRanks(h)...)
	}
}

// handRanks returns the ranks of all five cards in descending order.
func handRanks(h Hand) []Rank {
	ranks := make([]Rank, HandSize)
	for i, c := range h.cards {
		ranks[i] = c.Rank
	}
	return ranks
}
