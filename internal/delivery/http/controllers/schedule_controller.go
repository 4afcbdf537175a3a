package controllers

import (
	"log/slog"
	"net/http"

	"nexpo/internal/delivery/http/helpers"
	"nexpo/internal/domain"
)

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Add a timetable entry to an expo (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Param body body domain.ScheduleInput true "Schedule entry"
// @Success 201 {object} helpers.APIResponse{data=domain.Schedule}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/expos/{expoID}/schedules [post]
func (c *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.ScheduleInput
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	schedule, err := c.Service.Create(r.Context(), r.PathValue("expoID"), req)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, schedule)
}

// ListByExpo godoc
// @Summary List an expo's timetable
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Param includeInactive query bool false "Include inactive entries"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Schedule}
// @Router /expos/{expoID}/schedules [get]
func (c *ScheduleController) ListByExpo(w http.ResponseWriter, r *http.Request) {
	schedules, err := c.Service.ListByExpo(r.Context(), r.PathValue("expoID"), includeInactive(r))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schedules)
}

// List godoc
// @Summary List all timetable entries across expos
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include inactive entries"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Schedule}
// @Router /schedules [get]
func (c *ScheduleController) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := c.Service.List(r.Context(), includeInactive(r))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schedules)
}

// BulkUpsertScheduleRequest is the request body for PUT /admin/expos/{expoID}/schedules.
type BulkUpsertScheduleRequest struct {
	Schedules []domain.ScheduleInput `json:"schedules"`
}

// BulkUpsert godoc
// @Summary Bulk-update an expo's timetable (admin)
// @Description Entries carrying an id are updated; the rest are created.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Param body body controllers.BulkUpsertScheduleRequest true "Schedule entries"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/expos/{expoID}/schedules [put]
func (c *ScheduleController) BulkUpsert(w http.ResponseWriter, r *http.Request) {
	var req BulkUpsertScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := c.Service.BulkUpsert(r.Context(), r.PathValue("expoID"), req.Schedules); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"updated": true})
}

// ToggleStatus godoc
// @Summary Activate or deactivate a timetable entry (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Schedule}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/schedules/{scheduleID}/status [patch]
func (c *ScheduleController) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	schedule, err := c.Service.ToggleStatus(r.Context(), r.PathValue("scheduleID"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schedule)
}

// Delete godoc
// @Summary Delete a timetable entry (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/schedules/{scheduleID} [delete]
func (c *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("scheduleID")); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
