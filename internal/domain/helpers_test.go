package domain

// cardsOfLevels builds one card per given level, taking the lowest unused suit
// each time a level repeats.
func cardsOfLevels(levels ...Level) []Card {
	var used LevelCounts
	cards := make([]Card, 0, len(levels))
	for _, l := range levels {
		switch l {
		case LevelLesserJoker:
			cards = append(cards, CardLesserJoker)
		case LevelGreaterJoker:
			cards = append(cards, CardGreaterJoker)
		default:
			cards = append(cards, Card(int(l)*4+used[l]))
		}
		used[l]++
	}
	return cards
}
