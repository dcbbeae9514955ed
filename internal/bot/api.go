package bot

import (
	"errors"

	botinternal "landlord/internal/bot/internal"
	"landlord/internal/domain"
)

// Errors returned by CalculateMove.
var (
	ErrEmptyHand       = errors.New("bot: empty hand")
	ErrInvalidPrevious = errors.New("bot: previous play is not a valid combination")
)

// Decomposition and HandProfile re-export the engine's hand valuation types.
type (
	Decomposition = botinternal.Decomposition
	HandProfile   = botinternal.HandProfile
)

// Move represents the decision made by the AI.
type Move struct {
	Pass  bool
	Cards []domain.Card
	Combo domain.CardCombination
}

// Tracker is what the search needs to know about unseen cards.
type Tracker interface {
	IsBoss(combo domain.CardCombination) bool
	CanBeTopped(combo domain.CardCombination) bool
}

// TurnView is everything one decision is computed from.
type TurnView struct {
	Hand  []domain.Card
	Prev  domain.CardCombination
	Table domain.Table
	Cards Tracker
}

// Brain is the interface the transport layers drive.
type Brain interface {
	CalculateMove(view TurnView) (Move, error)
	EvaluateBid(hand []domain.Card, cards Tracker) float64
}

// Profile summarizes the best decomposition of hand.
func Profile(d Decomposition) HandProfile {
	return botinternal.ProfileHand(d)
}
