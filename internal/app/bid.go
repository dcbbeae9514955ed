package app

import "landlord/internal/config"

// BidPolicy turns a hand score into a bid.
type BidPolicy struct {
	Cutoffs config.BidCutoffs
}

// Bid returns 0 for weak hands, otherwise the tier the score reaches. A tier
// already claimed by an earlier bidder is not repeated; the bot passes instead.
func (p BidPolicy) Bid(score float64, maxBid int) int {
	switch {
	case score < p.Cutoffs.Zero:
		return 0
	case score < p.Cutoffs.One:
		if maxBid >= 1 {
			return 0
		}
		return 1
	case score < p.Cutoffs.Two:
		if maxBid >= 2 {
			return 0
		}
		return 2
	}
	return MaxBid
}
