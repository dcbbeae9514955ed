package app

import (
	"encoding/json"

	"landlord/internal/domain"
)

// Request is one judge request of the long-running match log. The first one
// carries the deal and the bids so far; the one that ends the auction adds
// the public cards; every request of the playing stage carries the two
// actions taken since the bot last moved, next seat first.
type Request struct {
	Own        []domain.Card   `json:"own,omitempty"`
	Bid        []int           `json:"bid,omitempty"`
	History    [][]domain.Card `json:"history,omitempty"`
	PublicCard []domain.Card   `json:"publiccard,omitempty"`
	Landlord   *int            `json:"landlord,omitempty"`
	Pos        *int            `json:"pos,omitempty"`
	FinalBid   *int            `json:"finalbid,omitempty"`
}

// Input is the whole log the judge hands to the bot on every turn. Responses
// echo the bot's earlier outputs: a bid number first, then card lists.
type Input struct {
	Requests  []Request         `json:"requests"`
	Responses []json.RawMessage `json:"responses"`
}

// Output is the single line the bot answers with: a bid or a card list.
type Output struct {
	Response any `json:"response"`
}

// ParseInput decodes one judge line.
func ParseInput(data []byte) (Input, error) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, wrapMalformed(err)
	}
	if len(in.Requests) == 0 {
		return Input{}, ErrEmptyRequests
	}
	return in, nil
}
