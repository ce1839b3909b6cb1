// Package poker classifies five-card poker hands and orders them.
package poker

import (
	"cmp"
	"fmt"
	"strings"
)

// Rank is a card rank. The numeric value is the rank's strength (Two=2 .. Ace=14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

var rankNames = [...]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the single character notation (e.g. "T", "A").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Name returns the English name of the rank (e.g. "Queen").
func (r Rank) Name() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r-Two]
}

// Plural returns the plural name used in hand descriptions (e.g. "Sixes").
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// Suit is a card suit. Suits are ordered Clubs < Diamonds < Hearts < Spades and
// the order only ever breaks otherwise exact ties.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitChars = "cdhs"

var (
	suitSymbols = [...]string{"♣", "♦", "♥", "♠"}
	suitNames   = [...]string{"Clubs", "Diamonds", "Hearts", "Spades"}
)

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the single letter notation (e.g. "s").
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(suitChars[s])
}

// Symbol returns the unicode suit symbol.
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Name returns the English name of the suit.
func (s Suit) Name() string {
	if !s.Valid() {
		return "Unknown"
	}
	return suitNames[s]
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Compare orders cards by rank, then by suit. It returns -1, 0 or +1.
func (c Card) Compare(other Card) int {
	if r := cmp.Compare(c.Rank, other.Rank); r != 0 {
		return r
	}
	return cmp.Compare(c.Suit, other.Suit)
}

// Difference returns the signed rank distance between c and other.
func (c Card) Difference(other Card) int {
	return int(c.Rank) - int(other.Rank)
}

// String returns the two character notation (e.g. "As", "Td").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Symbol returns the card with a suit symbol (e.g. "A♠").
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// ParseCard parses a string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a run of card notation such as "AsKsQsJsTs".
// Spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card at position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests and fixtures)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	if i := strings.IndexByte(rankChars, upper(c)); i >= 0 {
		return Two + Rank(i), nil
	}
	return 0, fmt.Errorf("invalid rank: %c", c)
}

func parseSuit(c byte) (Suit, error) {
	if i := strings.IndexByte(suitChars, lower(c)); i >= 0 {
		return Suit(i), nil
	}
	return 0, fmt.Errorf("invalid suit: %c", c)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
