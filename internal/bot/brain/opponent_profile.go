package brain

import (
	"landlord/internal/domain"
)

// SeatProfile tracks the visible history of one role at the table.
type SeatProfile struct {
	Role  domain.Role
	Turns int
	// CardsShown is how many cards the role has put on the table.
	CardsShown int
	// LastPassed is true until the role plays, and after each pass.
	LastPassed bool
	// PlayedStats counts how many of each combination type the role has played.
	PlayedStats map[domain.CardCombinationType]int
}

// NewSeatProfile initializes a profile for a role that has not acted yet.
func NewSeatProfile(role domain.Role) *SeatProfile {
	return &SeatProfile{
		Role:        role,
		LastPassed:  true,
		PlayedStats: make(map[domain.CardCombinationType]int),
	}
}

// RecordPlay logs a combination played by this role.
func (p *SeatProfile) RecordPlay(combo domain.CardCombination) {
	p.Turns++
	p.LastPassed = false
	p.CardsShown += combo.Count()
	p.PlayedStats[combo.Type]++
}

// RecordPass notes that this role passed.
func (p *SeatProfile) RecordPass() {
	p.Turns++
	p.LastPassed = true
}

// Bombs returns how many bombs and rockets the role has revealed.
func (p *SeatProfile) Bombs() int {
	return p.PlayedStats[domain.Bomb] + p.PlayedStats[domain.Rocket]
}
