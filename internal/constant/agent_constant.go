package constant

// Chat message roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// Ranking sources recorded on assistant messages.
const (
	RankingSourceOpenAI   = "openai"
	RankingSourceFallback = "fallback"
	RankingSourceNone     = "none"
)

// Event type codes published on the internal bus and NATS.
const (
	EventApplicationStatusChanged = "APPLICATION_STATUS_CHANGED"
	EventApplicationSubmitted     = "APPLICATION_SUBMITTED"
	EventRankingCompleted         = "RANKING_COMPLETED"
)

// DefaultRankingLimit caps the ranked list when neither the request nor the
// prompt specifies a count. Matches the recruiter UI page size.
const DefaultRankingLimit = 12

// MaxRankingLimit is the hard ceiling for any requested count.
const MaxRankingLimit = 100
