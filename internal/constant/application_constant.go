package constant

// Application lifecycle statuses.
const (
	StatusSubmitted    = "submitted"
	StatusRejectedPre  = "rejected_pre_interview"
	StatusInProgress   = "in_progress"
	StatusRejectedPost = "rejected_post_interview"
	StatusOffer        = "offer"
)

// AllowedTransitions maps a source status to the set of statuses it may move
// to. Terminal statuses map to an empty set; a missing source is invalid.
var AllowedTransitions = map[string]map[string]bool{
	StatusSubmitted: {
		StatusRejectedPre: true,
		StatusInProgress:  true,
	},
	StatusInProgress: {
		StatusRejectedPost: true,
		StatusOffer:        true,
	},
	StatusRejectedPre:  {},
	StatusRejectedPost: {},
	StatusOffer:        {},
}

// ScoreRequired reports whether the target status gates on a technical score.
func ScoreRequired(status string) bool {
	return status == StatusRejectedPost || status == StatusOffer
}

const (
	TechnicalScoreMin = 1
	TechnicalScoreMax = 10
)
