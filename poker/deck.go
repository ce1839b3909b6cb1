package poker

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck is a standard 52-card deck in a fixed order: suits Clubs to Spades,
// ranks Two to Ace within each suit. It is never shuffled.
type Deck [DeckSize]Card

// NewDeck returns the ordered 52-card deck.
func NewDeck() Deck {
	var d Deck
	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d[i] = NewCard(rank, suit)
			i++
		}
	}
	return d
}

// Index returns the position of c in the ordered deck, or -1 if c is not a
// valid card.
func Index(c Card) int {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return -1
	}
	return int(c.Suit)*13 + int(c.Rank-Two)
}

// EachHandFrom calls fn for every five-card hand whose lowest deck index is
// first, in lexicographic index order. Iteration stops early if fn returns
// false. Enumerating first = 0..47 visits all C(52,5) hands exactly once.
func (d Deck) EachHandFrom(first int, fn func(Hand) bool) {
	if first < 0 || first > DeckSize-HandSize {
		return
	}

	var cards [HandSize]Card
	cards[0] = d[first]
	for b := first + 1; b < DeckSize; b++ {
		cards[1] = d[b]
		for c := b + 1; c < DeckSize; c++ {
			cards[2] = d[c]
			for e := c + 1; e < DeckSize; e++ {
				cards[3] = d[e]
				for f := e + 1; f < DeckSize; f++ {
					cards[4] = d[f]
					h, _ := NewHand(cards[:]...)
					if !fn(h) {
						return
					}
				}
			}
		}
	}
}
