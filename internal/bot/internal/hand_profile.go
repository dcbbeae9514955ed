package internal

import "landlord/internal/domain"

// HandProfile summarizes a decomposition for logs and API responses.
type HandProfile struct {
	TotalCards      int
	Singles         int
	Pairs           int
	Triplets        int
	Bombs           int
	Straights       int
	StraightCards   int
	DoubleStraights int
	Rocket          bool
	Weak            int
}

// ProfileHand counts the components of a decomposition by shape.
func ProfileHand(d Decomposition) HandProfile {
	profile := HandProfile{Weak: d.Weak}
	for _, c := range d.Components {
		profile.TotalCards += c.Count()
		switch c.Type {
		case domain.Single:
			profile.Singles++
		case domain.Pair:
			profile.Pairs++
		case domain.Triplet:
			profile.Triplets++
		case domain.Bomb:
			profile.Bombs++
		case domain.Straight:
			profile.Straights++
			profile.StraightCards += c.Count()
		case domain.DoubleStraight:
			profile.DoubleStraights++
		case domain.Rocket:
			profile.Rocket = true
		}
	}
	return profile
}
