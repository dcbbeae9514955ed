package nakama

import (
	"landlord/internal/app"
	"landlord/internal/domain"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func cardsToValue(cards []domain.Card) []interface{} {
	out := make([]interface{}, 0, len(cards))
	for _, c := range cards {
		out = append(out, int(c))
	}
	return out
}

func decisionFields(d app.Decision) map[string]interface{} {
	fields := map[string]interface{}{
		"decision_id": d.ID,
		"stage":       d.Stage.String(),
		"score":       d.Score,
	}
	if d.Stage == app.StageBidding {
		fields["response"] = d.Bid
		return fields
	}
	fields["response"] = cardsToValue(d.Combo.Cards)
	fields["type"] = d.Combo.Type.String()
	fields["status"] = int(d.Status)
	return fields
}

func evaluationFields(ev app.Evaluation) map[string]interface{} {
	components := make([]interface{}, 0, len(ev.Components))
	for _, c := range ev.Components {
		components = append(components, map[string]interface{}{
			"type":  c.Type.String(),
			"cards": cardsToValue(c.Cards),
		})
	}
	p := ev.Profile
	return map[string]interface{}{
		"score":      ev.Score,
		"value":      ev.Value,
		"moves":      ev.Moves,
		"bid":        ev.Bid,
		"components": components,
		"profile": map[string]interface{}{
			"total_cards":      p.TotalCards,
			"singles":          p.Singles,
			"pairs":            p.Pairs,
			"triplets":         p.Triplets,
			"bombs":            p.Bombs,
			"straights":        p.Straights,
			"straight_cards":   p.StraightCards,
			"double_straights": p.DoubleStraights,
			"rocket":           p.Rocket,
			"weak":             p.Weak,
		},
	}
}

// marshalStruct renders fields as a JSON object through structpb.
func marshalStruct(fields map[string]interface{}) (string, error) {
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return "", err
	}
	b, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(st)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
