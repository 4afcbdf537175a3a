package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"nexpo/internal/delivery/http/helpers"
	"nexpo/internal/delivery/http/middleware"
	"nexpo/internal/domain"
)

type MessageController struct {
	Logger  *slog.Logger
	Service domain.MessageService
}

func NewMessageController(logger *slog.Logger, svc domain.MessageService) *MessageController {
	return &MessageController{
		Logger:  logger,
		Service: svc,
	}
}

// SendMessageBody is the request body for POST /messages.
type SendMessageBody struct {
	ReceiverID      string     `json:"receiver_id"`
	Type            string     `json:"type"`
	Content         string     `json:"content"`
	AppointmentDate *time.Time `json:"appointment_date"`
}

// Validate implements helpers.Validator.
func (b SendMessageBody) Validate() []string {
	var errs []string
	if b.ReceiverID == "" {
		errs = append(errs, "receiver_id is required")
	}
	if b.Content == "" {
		errs = append(errs, "content is required")
	}
	return errs
}

// Send godoc
// @Summary Send a chat message or appointment request
// @Description Stores the message and notifies the receiver in-app and by email best-effort.
// @Tags message
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.SendMessageBody true "Message"
// @Success 201 {object} helpers.APIResponse{data=domain.Message}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /messages [post]
func (c *MessageController) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var body SendMessageBody
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}

	message, err := c.Service.Send(r.Context(), userID, domain.SendMessageRequest{
		ReceiverID:      body.ReceiverID,
		Type:            body.Type,
		Content:         body.Content,
		AppointmentDate: body.AppointmentDate,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, message)
}

// ListMine godoc
// @Summary List the current user's conversation history
// @Description Admins share one inbox and see every message involving any admin.
// @Tags message
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.Message}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /messages [get]
func (c *MessageController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	messages, err := c.Service.ListMine(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, messages)
}
