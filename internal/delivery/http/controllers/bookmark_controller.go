package controllers

import (
	"log/slog"
	"net/http"

	"nexpo/internal/delivery/http/helpers"
	"nexpo/internal/delivery/http/middleware"
	"nexpo/internal/domain"
)

type BookmarkController struct {
	Logger  *slog.Logger
	Service domain.BookmarkService
}

func NewBookmarkController(logger *slog.Logger, svc domain.BookmarkService) *BookmarkController {
	return &BookmarkController{
		Logger:  logger,
		Service: svc,
	}
}

// ToggleBookmarkResponse reports the bookmark state after a toggle.
type ToggleBookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

// ToggleExpoBookmark godoc
// @Summary Toggle an expo bookmark for the current attendee
// @Tags bookmark
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Success 200 {object} helpers.APIResponse{data=controllers.ToggleBookmarkResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /attendee/expos/{expoID}/bookmark [post]
func (c *BookmarkController) ToggleExpoBookmark(w http.ResponseWriter, r *http.Request) {
	expoID := r.PathValue("expoID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	bookmarked, err := c.Service.ToggleExpoBookmark(r.Context(), expoID, userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ToggleBookmarkResponse{Bookmarked: bookmarked})
}

// ToggleSessionBookmark godoc
// @Summary Toggle a session bookmark for the current attendee
// @Tags bookmark
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse{data=controllers.ToggleBookmarkResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /attendee/sessions/{sessionID}/bookmark [post]
func (c *BookmarkController) ToggleSessionBookmark(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	bookmarked, err := c.Service.ToggleSessionBookmark(r.Context(), sessionID, userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ToggleBookmarkResponse{Bookmarked: bookmarked})
}

// ListExpoBookmarks godoc
// @Summary List the current attendee's expo bookmarks
// @Tags bookmark
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.ExpoBookmark}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /attendee/bookmarks/expos [get]
func (c *BookmarkController) ListExpoBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	bms, err := c.Service.ListExpoBookmarks(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bms)
}

// ListSessionBookmarks godoc
// @Summary List the current attendee's session bookmarks
// @Tags bookmark
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.SessionBookmark}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /attendee/bookmarks/sessions [get]
func (c *BookmarkController) ListSessionBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	bms, err := c.Service.ListSessionBookmarks(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bms)
}
