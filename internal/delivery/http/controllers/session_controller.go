package controllers

import (
	"log/slog"
	"net/http"

	"nexpo/internal/delivery/http/helpers"
	"nexpo/internal/domain"
)

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// SessionRequest is the request body for creating and updating sessions.
type SessionRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Type        string                  `json:"type"`
	Topic       string                  `json:"topic"`
	Speakers    []domain.SessionSpeaker `json:"speakers"`
	Date        string                  `json:"date"`
	StartTime   string                  `json:"start_time"`
	EndTime     string                  `json:"end_time"`
	Location    string                  `json:"location"`
	IsPaid      bool                    `json:"is_paid"`
	Price       float64                 `json:"price"`
	Capacity    int                     `json:"capacity"`
	BannerImage string                  `json:"banner_image"`
	ExpoID      string                  `json:"expo_id"`
	Interests   []string                `json:"interests"`
}

func (r SessionRequest) toInput() domain.SessionInput {
	return domain.SessionInput{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Topic:       r.Topic,
		Speakers:    r.Speakers,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		IsPaid:      r.IsPaid,
		Price:       r.Price,
		Capacity:    r.Capacity,
		BannerImage: r.BannerImage,
		ExpoID:      r.ExpoID,
		Interests:   r.Interests,
	}
}

// Create godoc
// @Summary Create a session or workshop (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.SessionRequest true "Session details"
// @Success 201 {object} helpers.APIResponse{data=domain.Session}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/sessions [post]
func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	session, err := c.Service.Create(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// Get godoc
// @Summary Get a single session
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param includeInactive query bool false "Include inactive sessions"
// @Success 200 {object} helpers.APIResponse{data=domain.Session}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sessions/{sessionID} [get]
func (c *SessionController) Get(w http.ResponseWriter, r *http.Request) {
	session, err := c.Service.Get(r.Context(), r.PathValue("sessionID"), includeInactive(r))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// List godoc
// @Summary List sessions, optionally filtered to one expo
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param expoId query string false "Filter by parent expo"
// @Param includeInactive query bool false "Include inactive sessions"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Session}
// @Router /sessions [get]
func (c *SessionController) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.List(r.Context(), r.URL.Query().Get("expoId"), includeInactive(r))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// Update godoc
// @Summary Update a session (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param body body controllers.SessionRequest true "Session details"
// @Success 200 {object} helpers.APIResponse{data=domain.Session}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/sessions/{sessionID} [put]
func (c *SessionController) Update(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	session, err := c.Service.Update(r.Context(), r.PathValue("sessionID"), req.toInput())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// ToggleStatus godoc
// @Summary Activate or deactivate a session (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Session}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/sessions/{sessionID}/status [patch]
func (c *SessionController) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	session, err := c.Service.ToggleStatus(r.Context(), r.PathValue("sessionID"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// Delete godoc
// @Summary Delete a session (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/sessions/{sessionID} [delete]
func (c *SessionController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("sessionID")); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
