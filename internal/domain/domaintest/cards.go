// Package domaintest builds hands for tests.
package domaintest

import "landlord/internal/domain"

// CardsOfLevels builds one card per given level, taking the lowest unused suit
// each time a level repeats.
func CardsOfLevels(levels ...domain.Level) []domain.Card {
	var used domain.LevelCounts
	cards := make([]domain.Card, 0, len(levels))
	for _, l := range levels {
		switch l {
		case domain.LevelLesserJoker:
			cards = append(cards, domain.CardLesserJoker)
		case domain.LevelGreaterJoker:
			cards = append(cards, domain.CardGreaterJoker)
		default:
			cards = append(cards, domain.Card(int(l)*4+used[l]))
		}
		used[l]++
	}
	return cards
}
