package domain

import "context"

// TextCompleter is the generative text provider port. Complete sends a
// free-text prompt and returns the provider's free-text completion. The
// response may be non-JSON, markdown-wrapped JSON, or malformed JSON;
// tolerating that is the caller's job. Implementations return ErrRateLimited
// when the upstream signals rate limiting.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// MatchProfile is the user side of a matching request.
type MatchProfile struct {
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Interests []string `json:"interests"`
}

// MatchCandidate is one booth, session, or expo reduced to the fields the
// matching engine looks at.
type MatchCandidate struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topic       string   `json:"topic"`
	Interests   []string `json:"interests"`
}

// Recommendation is one ranked result with a human-readable justification.
type Recommendation struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// MatchScore is a single-item compatibility verdict.
type MatchScore struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// ItinerarySlot is one schedule entry offered to the day planner.
type ItinerarySlot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// BoothAudit is the exhibitor-coach verdict for a booth setup.
type BoothAudit struct {
	Score int      `json:"score"`
	Tips  []string `json:"tips"`
}

// RecommendationService computes interest-based matches. Every operation
// degrades to a deterministic keyword-overlap path when the provider is
// absent, erroring, or returns unusable output; callers never see a
// provider-layer failure.
type RecommendationService interface {
	Recommend(ctx context.Context, profile MatchProfile, candidates []MatchCandidate, k int) ([]Recommendation, error)
	Score(ctx context.Context, profile MatchProfile, item MatchCandidate) (*MatchScore, error)
	PlanItinerary(ctx context.Context, profile MatchProfile, slots []ItinerarySlot) ([]ItinerarySlot, error)
	GenerateDescription(ctx context.Context, title, topic, eventType string) (string, error)
	AuditBooth(ctx context.Context, booth *Booth) (*BoothAudit, error)
}
