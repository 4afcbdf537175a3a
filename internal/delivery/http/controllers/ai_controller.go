package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"nexpo/internal/delivery/http/helpers"
	"nexpo/internal/domain"
)

type AIController struct {
	Logger  *slog.Logger
	Service domain.RecommendationService
}

func NewAIController(logger *slog.Logger, svc domain.RecommendationService) *AIController {
	return &AIController{
		Logger:  logger,
		Service: svc,
	}
}

// RecommendRequest is the request body for POST /ai/recommendations.
type RecommendRequest struct {
	UserProfile domain.MatchProfile     `json:"user_profile"`
	Candidates  []domain.MatchCandidate `json:"candidates"`
	K           int                     `json:"k"`
}

// RecommendResponse is the payload for POST /ai/recommendations.
type RecommendResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// Recommend godoc
// @Summary Rank candidate events for a user
// @Description Returns up to k ranked recommendations. Degrades to the deterministic keyword matcher when the provider is unavailable.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.RecommendRequest true "Profile and candidates"
// @Success 200 {object} helpers.APIResponse{data=controllers.RecommendResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /ai/recommendations [post]
func (c *AIController) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	recs, err := c.Service.Recommend(r.Context(), req.UserProfile, req.Candidates, req.K)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RecommendResponse{Recommendations: recs})
}

// MatchScoreRequest is the request body for POST /ai/match-score.
type MatchScoreRequest struct {
	UserProfile domain.MatchProfile   `json:"user_profile"`
	Item        domain.MatchCandidate `json:"item"`
}

// MatchScore godoc
// @Summary Score one event against a user profile
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.MatchScoreRequest true "Profile and item"
// @Success 200 {object} helpers.APIResponse{data=domain.MatchScore}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /ai/match-score [post]
func (c *AIController) MatchScore(w http.ResponseWriter, r *http.Request) {
	var req MatchScoreRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	score, err := c.Service.Score(r.Context(), req.UserProfile, req.Item)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, score)
}

// PlanItineraryRequest is the request body for POST /ai/itinerary.
type PlanItineraryRequest struct {
	UserProfile domain.MatchProfile    `json:"user_profile"`
	Schedule    []domain.ItinerarySlot `json:"schedule"`
}

// PlanItineraryResponse is the payload for POST /ai/itinerary.
type PlanItineraryResponse struct {
	Itinerary []domain.ItinerarySlot `json:"itinerary"`
}

// PlanItinerary godoc
// @Summary Build a day itinerary from a schedule
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.PlanItineraryRequest true "Profile and schedule"
// @Success 200 {object} helpers.APIResponse{data=controllers.PlanItineraryResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /ai/itinerary [post]
func (c *AIController) PlanItinerary(w http.ResponseWriter, r *http.Request) {
	var req PlanItineraryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	itinerary, err := c.Service.PlanItinerary(r.Context(), req.UserProfile, req.Schedule)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, PlanItineraryResponse{Itinerary: itinerary})
}

// GenerateDescriptionRequest is the request body for POST /ai/description.
type GenerateDescriptionRequest struct {
	Title string `json:"title"`
	Topic string `json:"topic"`
	Type  string `json:"type"`
}

// Validate implements helpers.Validator.
func (r *GenerateDescriptionRequest) Validate() []string {
	if strings.TrimSpace(r.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

// GenerateDescriptionResponse is the payload for POST /ai/description.
type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}

// GenerateDescription godoc
// @Summary Generate marketing copy for an event
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.GenerateDescriptionRequest true "Event details"
// @Success 200 {object} helpers.APIResponse{data=controllers.GenerateDescriptionResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /ai/description [post]
func (c *AIController) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req GenerateDescriptionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	description, err := c.Service.GenerateDescription(r.Context(), req.Title, req.Topic, req.Type)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GenerateDescriptionResponse{Description: description})
}

// AuditBoothRequest is the request body for POST /ai/booth-audit.
type AuditBoothRequest struct {
	Booth *domain.Booth `json:"booth"`
}

// Validate implements helpers.Validator.
func (r *AuditBoothRequest) Validate() []string {
	if r.Booth == nil {
		return []string{"booth is required"}
	}
	return nil
}

// AuditBooth godoc
// @Summary Audit a booth setup for attractiveness
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.AuditBoothRequest true "Booth data"
// @Success 200 {object} helpers.APIResponse{data=domain.BoothAudit}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /ai/booth-audit [post]
func (c *AIController) AuditBooth(w http.ResponseWriter, r *http.Request) {
	var req AuditBoothRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	audit, err := c.Service.AuditBooth(r.Context(), req.Booth)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, audit)
}
