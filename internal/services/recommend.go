package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"sort"
	"strings"

	"nexpo/internal/domain"
)

const (
	maxTitleLen    = 50
	maxDescLen     = 100
	maxInterests   = 10
	recommendCount = 3
	itineraryCap   = 3
)

type recommendationService struct {
	completer domain.TextCompleter
	logger    *slog.Logger
	jitter    func(n int) int
}

// NewRecommendationService returns a RecommendationService backed by the
// given text completer. A nil completer disables the provider path entirely;
// every operation then runs its deterministic fallback.
func NewRecommendationService(completer domain.TextCompleter, logger *slog.Logger) domain.RecommendationService {
	return &recommendationService{
		completer: completer,
		logger:    logger,
		jitter:    rand.Intn,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, profile domain.MatchProfile, candidates []domain.MatchCandidate, k int) ([]domain.Recommendation, error) {
	if len(candidates) == 0 {
		return []domain.Recommendation{}, nil
	}
	if k <= 0 {
		k = recommendCount
	}

	if s.completer != nil {
		recs, err := s.recommendWithProvider(ctx, profile, candidates, k)
		if err == nil {
			return recs, nil
		}
		s.logger.Warn("recommendation provider failed, using fallback", slog.String("error", err.Error()))
	}

	return fallbackRecommend(profile, candidates, k), nil
}

func (s *recommendationService) recommendWithProvider(ctx context.Context, profile domain.MatchProfile, candidates []domain.MatchCandidate, k int) ([]domain.Recommendation, error) {
	type cleanCandidate struct {
		ID        string   `json:"id"`
		Title     string   `json:"title"`
		Desc      string   `json:"desc"`
		Interests []string `json:"interests"`
	}
	clean := make([]cleanCandidate, 0, len(candidates))
	for _, c := range candidates {
		desc := c.Description
		if desc == "" {
			desc = c.Topic
		}
		clean = append(clean, cleanCandidate{
			ID:        c.ID,
			Title:     truncate(c.Title, maxTitleLen),
			Desc:      truncate(desc, maxDescLen),
			Interests: sanitizeInterests(c.Interests),
		})
	}
	candidateJSON, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("marshal candidates: %w", err)
	}
	interestJSON, _ := json.Marshal(sanitizeInterests(profile.Interests))

	prompt := fmt.Sprintf(`Act as an elite Event Concierge.

User Profile:
- Name: %s
- Role: %s
- KEY INTERESTS: %s

Candidates (Expos/Sessions):
%s

Matchmaking Rules:
1. STRICTLY prioritize candidates that align closely with the user's KEY INTERESTS.
2. If a direct match exists, rank it first.
3. If no direct match, find the most logical cross-disciplinary connection (e.g., "Technology" -> "Digital Art").
4. Select exactly %d recommendations.

Output Format:
Return a JSON array ONLY:
[
  { "id": "candidate_id", "reason": "A personalized 1-sentence hook referencing their specific interest." }
]`, profile.Name, profile.Role, interestJSON, candidateJSON, k)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var recs []domain.Recommendation
	if err := extractJSON(text, &recs); err != nil {
		return nil, fmt.Errorf("parse recommendations: %w", err)
	}
	return recs, nil
}

// fallbackRecommend counts how many of the profile's interests appear as a
// case-insensitive substring of each candidate's concatenated text fields,
// then takes the top k by count. Deterministic for a fixed input.
func fallbackRecommend(profile domain.MatchProfile, candidates []domain.MatchCandidate, k int) []domain.Recommendation {
	type scored struct {
		candidate domain.MatchCandidate
		hits      int
		matched   string
	}
	items := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		text := strings.ToLower(c.Title + " " + c.Description + " " + c.Topic + " " + strings.Join(c.Interests, " "))
		it := scored{candidate: c}
		for _, interest := range profile.Interests {
			if interest != "" && strings.Contains(text, strings.ToLower(interest)) {
				it.hits++
				it.matched = interest
			}
		}
		items = append(items, it)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].hits > items[j].hits })
	if len(items) > k {
		items = items[:k]
	}

	recs := make([]domain.Recommendation, 0, len(items))
	for _, it := range items {
		reason := "Popular event tailored for you."
		if it.matched != "" {
			reason = fmt.Sprintf("Matches your interest in %s.", it.matched)
		}
		recs = append(recs, domain.Recommendation{ID: it.candidate.ID, Reason: reason})
	}
	return recs
}

func (s *recommendationService) Score(ctx context.Context, profile domain.MatchProfile, item domain.MatchCandidate) (*domain.MatchScore, error) {
	if len(profile.Interests) == 0 {
		return &domain.MatchScore{
			Score:  75,
			Reason: "Update your profile interests for a precise score!",
		}, nil
	}

	if s.completer != nil {
		score, err := s.scoreWithProvider(ctx, profile, item)
		if err == nil {
			return score, nil
		}
		s.logger.Warn("match score provider failed, using fallback", slog.String("error", err.Error()))
	}

	return s.fallbackScore(profile, item), nil
}

func (s *recommendationService) scoreWithProvider(ctx context.Context, profile domain.MatchProfile, item domain.MatchCandidate) (*domain.MatchScore, error) {
	interestJSON, _ := json.Marshal(sanitizeInterests(profile.Interests))
	tags := item.Topic
	if len(item.Interests) > 0 {
		tags = strings.Join(item.Interests, ", ")
	}
	prompt := fmt.Sprintf(`Act as a compatibility algorithm.

User Interests: %s
Event Details: Title: %q, Desc: %q, Tags: %q

Task:
1. Calculate a compatibility score (0-100) based on semantic relevance.
2. Write a short, punchy 1-sentence reason addressing the user directly.

Output JSON ONLY:
{ "score": number, "reason": "string" }`, interestJSON, item.Title, truncate(item.Description, 300), tags)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var score domain.MatchScore
	if err := extractJSON(text, &score); err != nil {
		return nil, fmt.Errorf("parse score: %w", err)
	}
	return &score, nil
}

// fallbackScore starts at 40 and adds 20 per interest hit, capped at 95.
// A zero-hit score gets a small random bump so repeated misses do not all
// read as the same flat number.
func (s *recommendationService) fallbackScore(profile domain.MatchProfile, item domain.MatchCandidate) *domain.MatchScore {
	text := strings.ToLower(item.Title + " " + item.Description + " " + item.Topic + " " + strings.Join(item.Interests, " "))
	hits := 0
	hitWord := ""
	for _, interest := range profile.Interests {
		keyword := strings.ToLower(strings.TrimSpace(interest))
		if keyword != "" && strings.Contains(text, keyword) {
			hits++
			hitWord = interest
		}
	}

	score := 40 + hits*20
	if score > 95 {
		score = 95
	}
	if hits == 0 {
		score += s.jitter(10)
	}

	reason := "General recommendation based on popularity."
	if hits > 0 {
		reason = fmt.Sprintf("High relevance to your interest in %s.", hitWord)
	}
	return &domain.MatchScore{Score: score, Reason: reason}
}

func (s *recommendationService) PlanItinerary(ctx context.Context, profile domain.MatchProfile, slots []domain.ItinerarySlot) ([]domain.ItinerarySlot, error) {
	if len(slots) == 0 {
		return []domain.ItinerarySlot{}, nil
	}

	if s.completer != nil {
		itinerary, err := s.planWithProvider(ctx, profile, slots)
		if err == nil {
			return itinerary, nil
		}
		s.logger.Warn("itinerary provider failed, using fallback", slog.String("error", err.Error()))
	}

	return fallbackItinerary(profile, slots), nil
}

func (s *recommendationService) planWithProvider(ctx context.Context, profile domain.MatchProfile, slots []domain.ItinerarySlot) ([]domain.ItinerarySlot, error) {
	type scheduleEntry struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Time  string `json:"time"`
		Desc  string `json:"desc"`
	}
	entries := make([]scheduleEntry, 0, len(slots))
	for _, slot := range slots {
		entries = append(entries, scheduleEntry{
			ID:    slot.ID,
			Title: slot.Name,
			Time:  slot.StartTime + "-" + slot.EndTime,
			Desc:  truncate(slot.Description, maxDescLen),
		})
	}
	scheduleJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}
	interestJSON, _ := json.Marshal(sanitizeInterests(profile.Interests))

	prompt := fmt.Sprintf(`Act as an Event Planner.

User Interests: %s
Event Schedule: %s

Task:
1. Select up to 4 sessions that BEST match the user's interests.
2. Ensure times do not overlap (if possible).
3. Prioritize diversity of topics.

Output JSON array of IDs ONLY:
["event_id_1", "event_id_2"]`, interestJSON, scheduleJSON)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := extractJSON(text, &ids); err != nil {
		return nil, fmt.Errorf("parse itinerary ids: %w", err)
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	itinerary := make([]domain.ItinerarySlot, 0, len(ids))
	for _, slot := range slots {
		if selected[slot.ID] {
			itinerary = append(itinerary, slot)
		}
	}
	return itinerary, nil
}

func fallbackItinerary(profile domain.MatchProfile, slots []domain.ItinerarySlot) []domain.ItinerarySlot {
	itinerary := make([]domain.ItinerarySlot, 0, itineraryCap)
	for _, slot := range slots {
		text := strings.ToLower(slot.Name + slot.Description)
		for _, interest := range profile.Interests {
			if interest != "" && strings.Contains(text, strings.ToLower(interest)) {
				itinerary = append(itinerary, slot)
				break
			}
		}
		if len(itinerary) >= itineraryCap {
			break
		}
	}
	return itinerary
}

// Buzzword pools for the offline description writer, keyed by topic family.
var smartContext = map[string][]string{
	"tech":     {"cutting-edge algorithms", "digital transformation", "scalable architecture", "future-proof ecosystems", "next-gen innovation"},
	"business": {"market leadership", "ROI maximization", "disruptive strategies", "global expansion", "sustainable growth"},
	"health":   {"clinical breakthroughs", "patient-centric care", "biotech advancements", "holistic wellness", "telemedicine frontiers"},
	"design":   {"user-centric experiences", "aesthetic minimalism", "cognitive accessibility", "visual storytelling", "brand resonance"},
	"general":  {"industry best practices", "networking opportunities", "actionable insights", "expert-led panels", "strategic milestones"},
}

func (s *recommendationService) GenerateDescription(ctx context.Context, title, topic, eventType string) (string, error) {
	if title == "" {
		return "", fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	if s.completer != nil {
		prompt := fmt.Sprintf(`Act as a world-class Event Content Strategist.
Write a high-energy, sophisticated, and short description for an event.

Context:
- Event Title: %q
- Topic/Theme: %q
- Type: %q

Directives:
1. Do NOT start with "Join us". Be creative.
2. Infer potential agenda points based on the title.
3. Use strong verbs (e.g. "Discover", "Master", "Revolutionize").
4. Keep it under 250 characters.
5. Return PLAIN TEXT only.`, title, topic, eventType)

		text, err := s.completer.Complete(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), nil
		}
		if err != nil {
			s.logger.Warn("description provider failed, using fallback", slog.String("error", err.Error()))
		}
	}

	return s.smartDescription(title, topic, eventType), nil
}

func (s *recommendationService) smartDescription(title, topic, eventType string) string {
	safeTopic := strings.ToLower(topic)
	if safeTopic == "" {
		safeTopic = "general"
	}
	category := "general"
	for key := range smartContext {
		if key != "general" && strings.Contains(safeTopic, key) {
			category = key
			break
		}
	}
	buzzwords := smartContext[category]
	pick := func() string { return buzzwords[s.jitter(len(buzzwords))] }

	templates := []string{
		fmt.Sprintf("Unlock the full potential of %s. This exclusive %s dives deep into %s and %s, offering participants a competitive edge in today's landscape.", title, eventType, pick(), pick()),
		fmt.Sprintf("Are you ready to redefine %s? '%s' is curated for visionaries seeking to master %s. Join industry leaders as we explore the intersection of %s and practical application.", safeTopic, title, pick(), pick()),
		fmt.Sprintf("Experience a masterclass in %s. '%s' brings you face-to-face with the latest trends in %s. Don't miss this opportunity to elevate your understanding of %s and drive real impact.", safeTopic, title, pick(), pick()),
	}
	return templates[s.jitter(len(templates))]
}

func (s *recommendationService) AuditBooth(ctx context.Context, booth *domain.Booth) (*domain.BoothAudit, error) {
	if booth == nil {
		return nil, fmt.Errorf("%w: booth is required", domain.ErrInvalidInput)
	}

	if s.completer == nil {
		return &domain.BoothAudit{
			Score: 78,
			Tips: []string{
				"Add more high-quality images to showcase your booth.",
				"Your description is brief; detail your key products.",
				"Highlight specific offers to attract more registrations.",
			},
		}, nil
	}

	prompt := fmt.Sprintf(`Act as a Trade Show Expert. Audit this booth setup.

Data:
- Name: %s
- Size: %s
- Products/Services: %s
- Target Interests: %s

Task:
1. Rate the booth attractiveness (0-100).
2. Provide 3 specific, actionable tips to increase visitor engagement.

CRITICAL: Output valid JSON ONLY. Do not write any introduction or conclusion text.

Output JSON Format:
{ "score": number, "tips": ["string", "string", "string"] }`,
		booth.Name, booth.Size,
		strings.Join(booth.ProductsServices, ", "),
		strings.Join(booth.TargetInterests, ", "))

	text, err := s.completer.Complete(ctx, prompt)
	if err == nil {
		var audit domain.BoothAudit
		if perr := extractJSON(text, &audit); perr == nil {
			return &audit, nil
		}
		s.logger.Warn("booth audit parse failed, using fallback")
	} else {
		s.logger.Warn("booth audit provider failed, using fallback", slog.String("error", err.Error()))
	}

	return &domain.BoothAudit{
		Score: 70,
		Tips: []string{
			"Ensure your booth name and signage are visible from a distance.",
			"Consider adding an interactive demo to engage visitors.",
			"Update your booth description to clearly state your value proposition.",
		},
	}, nil
}

var fencedJSONRe = regexp.MustCompile("```json([\\s\\S]*?)```")

// extractJSON parses v out of potentially chatty provider output. It tries a
// direct parse, then a fenced ```json block, then the substring between the
// first opening bracket and the matching last closing one.
func extractJSON(text string, v any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("empty response")
	}
	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}

	if m := fencedJSONRe.FindStringSubmatch(text); len(m) == 2 {
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), v); err == nil {
			return nil
		}
	}

	firstOpen := strings.IndexAny(text, "{[")
	if firstOpen != -1 {
		closer := "}"
		if text[firstOpen] == '[' {
			closer = "]"
		}
		lastClose := strings.LastIndex(text, closer)
		if lastClose > firstOpen {
			if err := json.Unmarshal([]byte(text[firstOpen:lastClose+1]), v); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("no parseable JSON in response")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// sanitizeInterests flattens comma-joined entries, deduplicates, and caps the
// list to keep prompt payloads bounded.
func sanitizeInterests(interests []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(interests))
	for _, raw := range interests {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			out = append(out, part)
			if len(out) >= maxInterests {
				return out
			}
		}
	}
	return out
}
