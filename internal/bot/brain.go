package bot

import (
	"fmt"

	botinternal "landlord/internal/bot/internal"
	"landlord/internal/domain"
)

var _ Brain = (*Engine)(nil)

// Engine is the single-decision search. It keeps no state between calls.
type Engine struct {
	Tuning          botinternal.Weights
	MaxAssignments  int
	MaxKickerCombos int
}

// NewEngine returns an engine with the default tuning and the given
// enumeration caps; zero caps select the defaults.
func NewEngine(maxAssignments, maxKickerCombos int) *Engine {
	return &Engine{
		Tuning:          DefaultTuning,
		MaxAssignments:  maxAssignments,
		MaxKickerCombos: maxKickerCombos,
	}
}

// CalculateMove decides the play for view.
func (e *Engine) CalculateMove(view TurnView) (Move, error) {
	if len(view.Hand) == 0 {
		return Move{Pass: true, Combo: domain.PassCombination}, ErrEmptyHand
	}
	if view.Prev.Type == domain.Invalid {
		return Move{Pass: true, Combo: domain.PassCombination}, fmt.Errorf("%w: %s", ErrInvalidPrevious, domain.FormatCards(view.Prev.Cards))
	}

	combo := e.DecidePlay(view.Hand, view.Prev, view.Table, view.Cards)
	if combo.Type == domain.Pass {
		return Move{Pass: true, Combo: combo}, nil
	}
	return Move{Cards: combo.Cards, Combo: combo}, nil
}

// EvaluateBid scores a hand for bidding: the decomposition objective.
func (e *Engine) EvaluateBid(hand []domain.Card, cards Tracker) float64 {
	return e.organizer(cards).Decompose(hand).Score()
}

// Decompose exposes the valuation of a hand.
func (e *Engine) Decompose(hand []domain.Card, cards Tracker) Decomposition {
	return e.organizer(cards).Decompose(hand)
}

func (e *Engine) organizer(cards Tracker) *botinternal.Organizer {
	var boss botinternal.BossChecker
	if cards != nil {
		boss = cards
	}
	return botinternal.NewOrganizer(boss, e.MaxAssignments)
}

// DecidePlay returns the combination to play on top of prev, or a pass.
// A pass as prev means the table is empty and something must be played.
func (e *Engine) DecidePlay(hand []domain.Card, prev domain.CardCombination, table domain.Table, cards Tracker) domain.CardCombination {
	if len(hand) == 0 {
		return domain.PassCombination
	}
	if cards == nil {
		cards = unknownTracker{}
	}
	if prev.Type == domain.Pass {
		return e.lead(hand, table, cards)
	}
	return e.follow(hand, prev, table, cards)
}

func (e *Engine) lead(hand []domain.Card, table domain.Table, cards Tracker) domain.CardCombination {
	if whole := domain.IdentifyCombination(hand); whole.Valid() {
		return whole
	}

	gen := botinternal.NewGenerator(hand, e.MaxKickerCombos)
	scorer := botinternal.NewScorer(e.Tuning, e.organizer(cards), table)

	var best *botinternal.ScoredMove
	consider := func(m botinternal.ScoredMove) {
		if best == nil || m.Score() > best.Score() {
			best = &m
		}
	}
	for _, m := range gen.GetLeadMoves() {
		consider(scorer.ScoreLead(m))
	}

	for _, m := range gen.GetBombMoves(domain.PassCombination) {
		settled := len(m.Remaining) == 0 || domain.IsValidSet(m.Remaining)
		switch m.Combo.Type {
		case domain.Bomb:
			if settled && !cards.CanBeTopped(m.Combo) {
				return m.Combo
			}
		case domain.Rocket:
			if settled {
				return m.Combo
			}
			consider(scorer.ScoreLead(m))
		}
	}

	if best == nil {
		sorted := append([]domain.Card(nil), hand...)
		domain.SortHand(sorted)
		return domain.IdentifyCombination(sorted[:1])
	}
	return best.Move.Combo
}

func (e *Engine) follow(hand []domain.Card, prev domain.CardCombination, table domain.Table, cards Tracker) domain.CardCombination {
	if prev.Type == domain.Rocket {
		return domain.PassCombination
	}
	if whole := domain.IdentifyCombination(hand); domain.CanBeat(prev, whole) {
		return whole
	}

	gen := botinternal.NewGenerator(hand, e.MaxKickerCombos)
	scorer := botinternal.NewScorer(e.Tuning, e.organizer(cards), table)

	best := scorer.Baseline(hand)
	consider := func(m botinternal.ScoredMove) {
		if m.Score() > best.Score() {
			best = m
		}
	}

	for _, m := range gen.GetBeatingMoves(prev) {
		if len(m.Remaining) == 0 {
			return m.Combo
		}
		consider(scorer.ScoreBeat(m, prev))
	}

	for _, m := range gen.GetBombMoves(prev) {
		if len(m.Remaining) == 0 || domain.IsValidSet(m.Remaining) {
			return m.Combo
		}
		if m.Combo.Type == domain.Rocket {
			consider(scorer.ScoreRocket(m, prev))
		} else {
			consider(scorer.ScoreBomb(m, prev))
		}
	}

	return best.Move.Combo
}

// unknownTracker assumes every shape can be topped.
type unknownTracker struct{}

func (unknownTracker) IsBoss(domain.CardCombination) bool      { return false }
func (unknownTracker) CanBeTopped(domain.CardCombination) bool { return true }
