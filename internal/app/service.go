package app

import (
	"context"
	"errors"
	"fmt"

	"landlord/internal/bot"
	"landlord/internal/bot/brain"
	"landlord/internal/config"
	"landlord/internal/domain"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// ErrEmptyHand is returned when a hand to evaluate holds no cards.
var ErrEmptyHand = errors.New("hand is empty")

// Service contains the landlord use-cases: one decision per judge log and
// standalone hand evaluation.
type Service struct {
	engine *bot.Engine
	policy BidPolicy
}

// NewService builds a Service from the engine configuration.
func NewService(cfg config.EngineConfig) *Service {
	return &Service{
		engine: bot.NewEngine(cfg.MaxAssignments, cfg.MaxKickerCombos),
		policy: BidPolicy{Cutoffs: cfg.BidCutoffs},
	}
}

// Decision is the outcome of one turn.
type Decision struct {
	ID    string
	Stage Stage
	// Bid is set in the bidding stage.
	Bid int
	// Combo is set in the playing stage; a pass has no cards.
	Combo  domain.CardCombination
	Score  float64
	Status domain.TurnStatus
}

// Output renders the decision the way the judge expects it.
func (d Decision) Output() Output {
	if d.Stage == StageBidding {
		return Output{Response: d.Bid}
	}
	cards := make([]int, 0, len(d.Combo.Cards))
	for _, c := range d.Combo.Cards {
		cards = append(cards, int(c))
	}
	return Output{Response: cards}
}

// Decide replays the log and picks the bot's bid or play.
func (s *Service) Decide(ctx context.Context, logger runtime.Logger, in Input) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	state, err := BuildState(in)
	if err != nil {
		return Decision{}, fmt.Errorf("build state: %w", err)
	}

	d := Decision{ID: uuid.NewString(), Stage: state.Stage}
	log := logger.WithFields(map[string]interface{}{
		"decision_id": d.ID,
		"stage":       state.Stage.String(),
		"position":    int(state.Position),
		"hand":        domain.FormatCards(state.Hand),
	})

	if state.Stage == StageBidding {
		decomp := s.engine.Decompose(state.Hand, state.Memory)
		d.Score = decomp.Score()
		d.Bid = s.policy.Bid(d.Score, state.MaxBid())
		profile := bot.Profile(decomp)
		log.WithFields(map[string]interface{}{
			"score":   d.Score,
			"max_bid": state.MaxBid(),
			"bid":     d.Bid,
			"bombs":   profile.Bombs,
			"rocket":  profile.Rocket,
			"weak":    profile.Weak,
		}).Info("Bid decided")
		return d, nil
	}

	if len(state.Hand) == 0 {
		log.Warn("Asked to play with an empty hand")
		return Decision{}, ErrEmptyHand
	}

	table := state.Table()
	d.Status = table.Status
	move, err := s.engine.CalculateMove(bot.TurnView{
		Hand:  state.Hand,
		Prev:  state.LastPlay,
		Table: table,
		Cards: state.Memory,
	})
	if err != nil {
		log.Error("Decision failed: %v", err)
		return Decision{}, err
	}
	d.Combo = move.Combo

	fields := map[string]interface{}{
		"status":  int(table.Status),
		"role":    state.Role().String(),
		"prev":    domain.FormatCards(state.LastPlay.Cards),
		"play":    domain.FormatCards(move.Cards),
		"type":    move.Combo.Type.String(),
		"cards":   table.Cards,
		"unseen":  state.Memory.Counts(),
		"passing": move.Pass,
	}
	for _, seat := range state.Memory.Seats {
		if n := seat.Bombs(); n > 0 {
			fields["bombs_"+seat.Role.String()] = n
		}
	}
	log.WithFields(fields).Info("Play decided")
	return d, nil
}

// Evaluation describes how the engine values a hand.
type Evaluation struct {
	Score      float64
	Value      float64
	Moves      float64
	Components []domain.CardCombination
	Profile    bot.HandProfile
	Bid        int
}

// Evaluate values a hand with nothing else known, and suggests a bid against maxBid.
func (s *Service) Evaluate(hand []domain.Card, maxBid int) (Evaluation, error) {
	if len(hand) == 0 {
		return Evaluation{}, ErrEmptyHand
	}
	if err := checkCards(hand); err != nil {
		return Evaluation{}, err
	}
	memory := brain.NewMemory()
	memory.MarkMine(hand)
	decomp := s.engine.Decompose(hand, memory)
	return Evaluation{
		Score:      decomp.Score(),
		Value:      decomp.Value,
		Moves:      decomp.Moves,
		Components: decomp.Components,
		Profile:    bot.Profile(decomp),
		Bid:        s.policy.Bid(decomp.Score(), maxBid),
	}, nil
}
