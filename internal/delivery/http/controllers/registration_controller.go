package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"nexpo/internal/delivery/http/helpers"
	"nexpo/internal/delivery/http/middleware"
	"nexpo/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterForExpoRequest is the request body for POST /attendee/expos/{expoID}/registrations.
type RegisterForExpoRequest struct {
	FullName           string   `json:"full_name"`
	Phone              string   `json:"phone"`
	City               string   `json:"city"`
	AdditionalSessions []string `json:"additional_sessions"`
}

// Validate implements helpers.Validator.
func (r *RegisterForExpoRequest) Validate() []string {
	if strings.TrimSpace(r.FullName) == "" {
		return []string{"full_name is required"}
	}
	return nil
}

// RegisterForExpo godoc
// @Summary Register the current attendee for an expo
// @Description Creates the registration, emails the pass, and registers any additional sessions best-effort.
// @Tags registration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Param body body controllers.RegisterForExpoRequest true "Contact details and optional session upsells"
// @Success 201 {object} helpers.APIResponse{data=domain.ExpoRegistration}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /attendee/expos/{expoID}/registrations [post]
func (c *RegistrationController) RegisterForExpo(w http.ResponseWriter, r *http.Request) {
	expoID := r.PathValue("expoID")
	if expoID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing expoID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req RegisterForExpoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	contact := domain.ContactInfo{FullName: req.FullName, Phone: req.Phone, City: req.City}
	reg, err := c.Service.RegisterForExpo(r.Context(), expoID, userID, contact, req.AdditionalSessions)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// RegisterForSessionRequest is the request body for POST /attendee/sessions/{sessionID}/registrations.
type RegisterForSessionRequest struct {
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	AdditionalExpoID string `json:"additional_expo_id"`
}

// Validate implements helpers.Validator.
func (r *RegisterForSessionRequest) Validate() []string {
	if strings.TrimSpace(r.FullName) == "" {
		return []string{"full_name is required"}
	}
	return nil
}

// RegisterForSession godoc
// @Summary Register the current attendee for a session
// @Description Creates the registration subject to capacity, emails the ticket, and optionally registers the parent expo best-effort.
// @Tags registration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param body body controllers.RegisterForSessionRequest true "Contact details and optional expo upsell"
// @Success 201 {object} helpers.APIResponse{data=domain.SessionRegistration}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /attendee/sessions/{sessionID}/registrations [post]
func (c *RegistrationController) RegisterForSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req RegisterForSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	contact := domain.ContactInfo{FullName: req.FullName, Phone: req.Phone, City: req.City}
	reg, err := c.Service.RegisterForSession(r.Context(), sessionID, userID, contact, req.AdditionalExpoID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// CheckRegistrationResponse is the payload for registration existence checks.
type CheckRegistrationResponse struct {
	Registered bool `json:"registered"`
}

// CheckExpoRegistration godoc
// @Summary Check whether the current attendee is registered for an expo
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Success 200 {object} helpers.APIResponse{data=controllers.CheckRegistrationResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /attendee/expos/{expoID}/registrations/check [get]
func (c *RegistrationController) CheckExpoRegistration(w http.ResponseWriter, r *http.Request) {
	expoID := r.PathValue("expoID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	registered, err := c.Service.CheckExpoRegistration(r.Context(), expoID, userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CheckRegistrationResponse{Registered: registered})
}

// CheckSessionRegistration godoc
// @Summary Check whether the current attendee is registered for a session
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse{data=controllers.CheckRegistrationResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /attendee/sessions/{sessionID}/registrations/check [get]
func (c *RegistrationController) CheckSessionRegistration(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	registered, err := c.Service.CheckSessionRegistration(r.Context(), sessionID, userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CheckRegistrationResponse{Registered: registered})
}

// ListMyExpoRegistrations godoc
// @Summary List the current attendee's expo registrations
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.ExpoRegistration}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /attendee/registrations/expos [get]
func (c *RegistrationController) ListMyExpoRegistrations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	regs, err := c.Service.ListMyExpoRegistrations(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// ListMySessionRegistrations godoc
// @Summary List the current attendee's session registrations
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.SessionRegistration}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /attendee/registrations/sessions [get]
func (c *RegistrationController) ListMySessionRegistrations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	regs, err := c.Service.ListMySessionRegistrations(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// ListExpoRegistrations godoc
// @Summary List all registrations for an expo (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Success 200 {object} helpers.APIResponse{data=[]domain.ExpoRegistration}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/expos/{expoID}/registrations [get]
func (c *RegistrationController) ListExpoRegistrations(w http.ResponseWriter, r *http.Request) {
	expoID := r.PathValue("expoID")
	regs, err := c.Service.ListExpoRegistrations(r.Context(), expoID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// UpdateRegistrationRequest is the request body for PATCH /admin/registrations/{registrationID}.
type UpdateRegistrationRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Status   string `json:"status"`
}

// Validate implements helpers.Validator.
func (r *UpdateRegistrationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "full_name is required")
	}
	if r.Status != domain.RegistrationStatusRegistered && r.Status != domain.RegistrationStatusCancelled {
		errs = append(errs, "status must be registered or cancelled")
	}
	return errs
}

// UpdateExpoRegistration godoc
// @Summary Update an expo registration (admin)
// @Description Mutates contact fields and status. Cancelling sends a notice; reinstating resends the pass with the original serial.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID"
// @Param body body controllers.UpdateRegistrationRequest true "Fields to set"
// @Success 200 {object} helpers.APIResponse{data=domain.ExpoRegistration}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/registrations/{registrationID} [patch]
func (c *RegistrationController) UpdateExpoRegistration(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")

	var req UpdateRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg, err := c.Service.UpdateExpoRegistration(r.Context(), registrationID, domain.RegistrationUpdate{
		FullName: req.FullName,
		Phone:    req.Phone,
		City:     req.City,
		Status:   req.Status,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// DeleteSessionRegistration godoc
// @Summary Hard-delete a session registration (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/registrations/sessions/{registrationID} [delete]
func (c *RegistrationController) DeleteSessionRegistration(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if err := c.Service.DeleteSessionRegistration(r.Context(), registrationID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// AdminRegisterRequest is the request body for POST /admin/expos/{expoID}/registrations.
type AdminRegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

// Validate implements helpers.Validator.
func (r *AdminRegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "full_name is required")
	}
	return errs
}

// RegisterAttendeeByAdmin godoc
// @Summary Register an attendee for an expo by email (admin)
// @Description Finds or creates the attendee account, registers them, and emails the pass.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Param body body controllers.AdminRegisterRequest true "Attendee details"
// @Success 201 {object} helpers.APIResponse{data=domain.ExpoRegistration}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/expos/{expoID}/registrations [post]
func (c *RegistrationController) RegisterAttendeeByAdmin(w http.ResponseWriter, r *http.Request) {
	expoID := r.PathValue("expoID")

	var req AdminRegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg, err := c.Service.RegisterAttendeeByAdmin(r.Context(), expoID, req.Email, domain.ContactInfo{
		FullName: req.FullName,
		Phone:    req.Phone,
		City:     req.City,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}
