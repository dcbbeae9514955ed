package bot

import botinternal "landlord/internal/bot/internal"

// DefaultTuning holds the hand-tuned adjustments of the decision search.
var DefaultTuning = botinternal.Weights{
	BossBonus:          150.0,
	AttachmentDiscount: 0.15,

	FeedAllyBonus:    100.0,
	FeedAllyMaxLevel: 3,

	ExactCountPenalty:    100.0,
	ExactCountMaxCards:   3,
	ExactCountLevelBonus: 2.0,

	PassPenalty:   7.0,
	ThreatPenalty: 22.0,
	ThreatCards:   2,

	LevelPivot: 11.0,

	BombFeedBonus:     12.0,
	BombAllyPenalty:   20.0,
	RocketThreatBonus: 100.0,
	RocketThreatCards: 2,
	RocketFeedBonus:   15.0,
	RocketAllyPenalty: 25.0,
}
