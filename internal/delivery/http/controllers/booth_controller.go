package controllers

import (
	"log/slog"
	"net/http"

	"nexpo/internal/delivery/http/helpers"
	"nexpo/internal/delivery/http/middleware"
	"nexpo/internal/domain"
)

type BoothController struct {
	Logger       *slog.Logger
	Service      domain.BoothService
	VisitService domain.BoothVisitService
}

func NewBoothController(logger *slog.Logger, svc domain.BoothService, visitSvc domain.BoothVisitService) *BoothController {
	return &BoothController{
		Logger:       logger,
		Service:      svc,
		VisitService: visitSvc,
	}
}

// CreateBoothRequest is the request body for POST /admin/expos/{expoID}/booths.
type CreateBoothRequest struct {
	Name  string  `json:"name"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// CreateBooth godoc
// @Summary Add a single booth to an expo (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Param body body controllers.CreateBoothRequest true "Booth details"
// @Success 201 {object} helpers.APIResponse{data=domain.Booth}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/expos/{expoID}/booths [post]
func (c *BoothController) CreateBooth(w http.ResponseWriter, r *http.Request) {
	var req CreateBoothRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	booth, err := c.Service.CreateBooth(r.Context(), r.PathValue("expoID"), domain.BoothCreateInput{
		Name:  req.Name,
		Size:  req.Size,
		Price: req.Price,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booth)
}

// BookBoothRequest is the request body for POST /exhibitor/booths/{boothID}/book.
type BookBoothRequest struct {
	ProductsServices []string            `json:"products_services"`
	TargetInterests  []string            `json:"target_interests"`
	Staff            []domain.BoothStaff `json:"staff"`
}

// BookBooth godoc
// @Summary Book a booth for the current exhibitor
// @Description Marks the booth booked, stores the exhibitor's details, and emails the QR exhibitor pass best-effort.
// @Tags booth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boothID path string true "Booth ID"
// @Param body body controllers.BookBoothRequest true "Booking details"
// @Success 200 {object} helpers.APIResponse{data=domain.Booth}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /exhibitor/booths/{boothID}/book [post]
func (c *BoothController) BookBooth(w http.ResponseWriter, r *http.Request) {
	boothID := r.PathValue("boothID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req BookBoothRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	booth, err := c.Service.BookBooth(r.Context(), boothID, userID, domain.BoothBookingRequest{
		ProductsServices: req.ProductsServices,
		TargetInterests:  req.TargetInterests,
		Staff:            req.Staff,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booth)
}

// UnbookBooth godoc
// @Summary Make a booked booth available again (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param boothID path string true "Booth ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Booth}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/booths/{boothID}/unbook [post]
func (c *BoothController) UnbookBooth(w http.ResponseWriter, r *http.Request) {
	boothID := r.PathValue("boothID")
	booth, err := c.Service.UnbookBooth(r.Context(), boothID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booth)
}

// ListByExpo godoc
// @Summary List booths for an expo
// @Tags booth
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Booth}
// @Router /expos/{expoID}/booths [get]
func (c *BoothController) ListByExpo(w http.ResponseWriter, r *http.Request) {
	expoID := r.PathValue("expoID")
	booths, err := c.Service.ListByExpo(r.Context(), expoID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booths)
}

// DeleteBooth godoc
// @Summary Delete an unbooked booth (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param boothID path string true "Booth ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/booths/{boothID} [delete]
func (c *BoothController) DeleteBooth(w http.ResponseWriter, r *http.Request) {
	boothID := r.PathValue("boothID")
	if err := c.Service.DeleteBooth(r.Context(), boothID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// RecordVisit godoc
// @Summary Record a booth visit check-in
// @Description Called from the QR deep link on the exhibitor pass. Requires an active expo registration.
// @Tags booth
// @Produce json
// @Security BearerAuth
// @Param expoID path string true "Expo ID"
// @Param boothID path string true "Booth ID"
// @Success 201 {object} helpers.APIResponse{data=domain.BoothVisit}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /attendee/boothvisit/{expoID}/{boothID} [post]
func (c *BoothController) RecordVisit(w http.ResponseWriter, r *http.Request) {
	expoID := r.PathValue("expoID")
	boothID := r.PathValue("boothID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	visit, err := c.VisitService.RecordVisit(r.Context(), expoID, boothID, userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, visit)
}
