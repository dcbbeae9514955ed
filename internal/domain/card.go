package domain

import (
	"sort"
	"strings"
)

// Card is one of the 54 physical cards, encoded the way the judge sends them:
// 0..51 are ranked cards (four per rank, lowest rank first), 52 and 53 are the jokers.
type Card int

// Level is the comparable rank of a card. Copies of a rank share a level.
type Level int

const (
	CardLesserJoker  Card = 52
	CardGreaterJoker Card = 53
	DeckSize              = 54
)

const (
	// MaxLevel is one past the highest level.
	MaxLevel Level = 15
	// MaxStraightLevel is the highest level a chain may reach (the Ace).
	MaxStraightLevel  Level = 11
	LevelTwo          Level = 12
	LevelLesserJoker  Level = 13
	LevelGreaterJoker Level = 14
)

var levelNames = [MaxLevel]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2", "jk", "JK"}

var suitNames = [4]string{"S", "H", "C", "D"}

// Level maps a card to its level: 3..A are 0..11, 2 is 12, jokers are 13 and 14.
func (c Card) Level() Level {
	return Level(c/4 + c/53)
}

// IsJoker reports whether the card is one of the two jokers.
func (c Card) IsJoker() bool {
	return c >= CardLesserJoker
}

// Valid reports whether the card identity is inside the deck.
func (c Card) Valid() bool {
	return c >= 0 && c < DeckSize
}

func (c Card) String() string {
	if !c.Valid() {
		return "?"
	}
	if c.IsJoker() {
		return levelNames[c.Level()]
	}
	return levelNames[c.Level()] + suitNames[c%4]
}

func (l Level) String() string {
	if l < 0 || l >= MaxLevel {
		return "?"
	}
	return levelNames[l]
}

// Chainable reports whether the level may take part in a straight or another chain.
func (l Level) Chainable() bool {
	return l >= 0 && l <= MaxStraightLevel
}

// LevelCounts holds how many cards of each level a set contains.
type LevelCounts [MaxLevel]int

// CountLevels aggregates cards by level.
func CountLevels(cards []Card) LevelCounts {
	var counts LevelCounts
	for _, c := range cards {
		counts[c.Level()]++
	}
	return counts
}

// Supply returns the per-level counts of a full deck.
func Supply() LevelCounts {
	var counts LevelCounts
	for l := Level(0); l < LevelLesserJoker; l++ {
		counts[l] = 4
	}
	counts[LevelLesserJoker] = 1
	counts[LevelGreaterJoker] = 1
	return counts
}

// Distinct returns how many levels have at least one card.
func (lc LevelCounts) Distinct() int {
	n := 0
	for _, c := range lc {
		if c > 0 {
			n++
		}
	}
	return n
}

// NewDeck returns the 54 cards in ascending order.
func NewDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i)
	}
	return deck
}

// SortHand orders cards by ascending identity, which also groups them by level.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool { return cards[i] < cards[j] })
}

// RemoveCards removes the specified cards from a hand and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return append([]Card(nil), hand...)
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}

// FormatCards renders cards for logs, e.g. "3S 3H 4C".
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
