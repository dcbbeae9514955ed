package brain

import (
	"landlord/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown CardStatus = iota // Presumed in an opponent's hand
	StatusMine                      // In the bot's hand
	StatusPlayed                    // Already on the table
)

// CardMemory is the bot's private view of one deal. It is rebuilt from the
// recorded history before every decision.
type CardMemory struct {
	// DeckStatus tracks all 54 cards, indexed by card identity.
	DeckStatus [domain.DeckSize]CardStatus
	// Seats holds what each role has shown so far, indexed by domain.Role.
	Seats [domain.NumSeats]*SeatProfile

	unseen domain.LevelCounts
}

// NewMemory initializes a fresh memory state.
func NewMemory() *CardMemory {
	m := &CardMemory{}
	m.Reset()
	return m
}

// Reset clears the memory for a new deal.
func (m *CardMemory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnknown
	}
	m.unseen = domain.Supply()
	for r := range m.Seats {
		m.Seats[r] = NewSeatProfile(domain.Role(r))
	}
}

// MarkMine records the cards currently in the bot's hand.
func (m *CardMemory) MarkMine(cards []domain.Card) {
	m.mark(cards, StatusMine)
}

// MarkPlayed records cards that have been played on the table.
func (m *CardMemory) MarkPlayed(cards []domain.Card) {
	m.mark(cards, StatusPlayed)
}

func (m *CardMemory) mark(cards []domain.Card, status CardStatus) {
	for _, c := range cards {
		if !c.Valid() {
			continue
		}
		if m.DeckStatus[c] == StatusUnknown {
			m.unseen[c.Level()]--
		}
		m.DeckStatus[c] = status
	}
}

// RecordPlay logs that a role played a set of cards. An empty set is a pass.
func (m *CardMemory) RecordPlay(role domain.Role, cards []domain.Card) {
	p := m.Seats[role]
	if len(cards) == 0 {
		p.RecordPass()
		return
	}
	m.MarkPlayed(cards)
	p.RecordPlay(domain.IdentifyCombination(cards))
}

// IsPlayed returns true if the card is already out of the game.
func (m *CardMemory) IsPlayed(c domain.Card) bool {
	return m.DeckStatus[c] == StatusPlayed
}

// Remaining returns how many copies of a level may still sit with the opponents.
func (m *CardMemory) Remaining(l domain.Level) int {
	if l < 0 || l >= domain.MaxLevel {
		return 0
	}
	return m.unseen[l]
}

// Counts returns the unseen copies of every level.
func (m *CardMemory) Counts() domain.LevelCounts {
	return m.unseen
}
