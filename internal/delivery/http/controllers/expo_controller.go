package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"nexpo/internal/delivery/http/helpers"
	"nexpo/internal/domain"
)

type ExpoController struct {
	Logger  *slog.Logger
	Service domain.ExpoService
}

func NewExpoController(logger *slog.Logger, svc domain.ExpoService) *ExpoController {
	return &ExpoController{
		Logger:  logger,
		Service: svc,
	}
}

// includeInactive reports whether the request opted into inactive records.
func includeInactive(r *http.Request) bool {
	return r.URL.Query().Get("includeInactive") == "true"
}

// CreateExpoRequest is the request body for POST /admin/expos.
type CreateExpoRequest struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Theme          string                 `json:"theme"`
	Location       string                 `json:"location"`
	StartDate      time.Time              `json:"start_date"`
	EndDate        time.Time              `json:"end_date"`
	IsPaid         bool                   `json:"is_paid"`
	Price          float64                `json:"price"`
	EntranceInfo   string                 `json:"entrance_info"`
	MapImage       string                 `json:"map_image"`
	ThumbnailImage string                 `json:"thumbnail_image"`
	Interests      []string               `json:"interests"`
	BoothGroups    []domain.BoothGroup    `json:"booth_groups"`
	Schedules      []domain.ScheduleInput `json:"schedules"`
}

// Create godoc
// @Summary Create an expo with its booth inventory and timetable (admin)
// @Description Creates the expo, bulk-creates booths from the booth groups, seeds the timetable, and notifies users best-effort.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateExpoRequest true "Expo details"
// @Success 201 {object} helpers.APIResponse{data=domain.Expo}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/expos [post]
func (c *ExpoController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	expo, err := c.Service.Create(r.Context(), domain.CreateExpoInput{
		Title:          req.Title,
		Description:    req.Description,
		Theme:          req.Theme,
		Location:       req.Location,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		IsPaid:         req.IsPaid,
		Price:          req.Price,
		EntranceInfo:   req.EntranceInfo,
		MapImage:       req.MapImage,
		ThumbnailImage: req.ThumbnailImage,
		Interests:      req.Interests,
		BoothGroups:    req.BoothGroups,
		Schedules:      req.Schedules,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, expo)
}

// Get godoc
// @Summary Get a single expo
// @Tags expo
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Param includeInactive query bool false "Include inactive expos"
// @Success 200 {object} helpers.APIResponse{data=domain.Expo}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /expos/{expoID} [get]
func (c *ExpoController) Get(w http.ResponseWriter, r *http.Request) {
	expo, err := c.Service.Get(r.Context(), r.PathValue("expoID"), includeInactive(r))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, expo)
}

// List godoc
// @Summary List expos
// @Tags expo
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include inactive expos"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Expo}
// @Router /expos [get]
func (c *ExpoController) List(w http.ResponseWriter, r *http.Request) {
	expos, err := c.Service.List(r.Context(), includeInactive(r))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, expos)
}

// UpdateExpoRequest is the request body for PUT /admin/expos/{expoID}.
type UpdateExpoRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Theme          string    `json:"theme"`
	Location       string    `json:"location"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	IsPaid         bool      `json:"is_paid"`
	Price          float64   `json:"price"`
	EntranceInfo   string    `json:"entrance_info"`
	MapImage       string    `json:"map_image"`
	ThumbnailImage string    `json:"thumbnail_image"`
	Interests      []string  `json:"interests"`
}

// Update godoc
// @Summary Update an expo (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Param body body controllers.UpdateExpoRequest true "Expo details"
// @Success 200 {object} helpers.APIResponse{data=domain.Expo}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/expos/{expoID} [put]
func (c *ExpoController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateExpoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	expo, err := c.Service.Update(r.Context(), r.PathValue("expoID"), domain.UpdateExpoInput{
		Title:          req.Title,
		Description:    req.Description,
		Theme:          req.Theme,
		Location:       req.Location,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		IsPaid:         req.IsPaid,
		Price:          req.Price,
		EntranceInfo:   req.EntranceInfo,
		MapImage:       req.MapImage,
		ThumbnailImage: req.ThumbnailImage,
		Interests:      req.Interests,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, expo)
}

// ToggleStatus godoc
// @Summary Activate or deactivate an expo (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Expo}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/expos/{expoID}/status [patch]
func (c *ExpoController) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	expo, err := c.Service.ToggleStatus(r.Context(), r.PathValue("expoID"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, expo)
}

// Delete godoc
// @Summary Delete an expo without booked booths (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/expos/{expoID} [delete]
func (c *ExpoController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("expoID")); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
