package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"nexpo/internal/delivery/http/controllers"
	"nexpo/internal/delivery/http/middleware"
	"nexpo/internal/domain"
)

// Controllers bundles the controllers the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Expo         *controllers.ExpoController
	Session      *controllers.SessionController
	Schedule     *controllers.ScheduleController
	Registration *controllers.RegistrationController
	Bookmark     *controllers.BookmarkController
	Booth        *controllers.BoothController
	AI           *controllers.AIController
	Notification *controllers.NotificationController
	Message      *controllers.MessageController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier, logger)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin)(h))
	}
	exhibitor := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleExhibitor)(h))
	}

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Expo, session, and timetable reads
	mux.HandleFunc("GET /expos", auth(c.Expo.List))
	mux.HandleFunc("GET /expos/{expoID}", auth(c.Expo.Get))
	mux.HandleFunc("GET /expos/{expoID}/schedules", auth(c.Schedule.ListByExpo))
	mux.HandleFunc("GET /schedules", auth(c.Schedule.List))
	mux.HandleFunc("GET /sessions", auth(c.Session.List))
	mux.HandleFunc("GET /sessions/{sessionID}", auth(c.Session.Get))

	// Attendee registration
	mux.HandleFunc("POST /attendee/expos/{expoID}/registrations", auth(c.Registration.RegisterForExpo))
	mux.HandleFunc("GET /attendee/expos/{expoID}/registrations/check", auth(c.Registration.CheckExpoRegistration))
	mux.HandleFunc("POST /attendee/sessions/{sessionID}/registrations", auth(c.Registration.RegisterForSession))
	mux.HandleFunc("GET /attendee/sessions/{sessionID}/registrations/check", auth(c.Registration.CheckSessionRegistration))
	mux.HandleFunc("GET /attendee/registrations/expos", auth(c.Registration.ListMyExpoRegistrations))
	mux.HandleFunc("GET /attendee/registrations/sessions", auth(c.Registration.ListMySessionRegistrations))

	// Bookmarks
	mux.HandleFunc("POST /attendee/expos/{expoID}/bookmark", auth(c.Bookmark.ToggleExpoBookmark))
	mux.HandleFunc("POST /attendee/sessions/{sessionID}/bookmark", auth(c.Bookmark.ToggleSessionBookmark))
	mux.HandleFunc("GET /attendee/bookmarks/expos", auth(c.Bookmark.ListExpoBookmarks))
	mux.HandleFunc("GET /attendee/bookmarks/sessions", auth(c.Bookmark.ListSessionBookmarks))

	// Booths and visits
	mux.HandleFunc("GET /expos/{expoID}/booths", auth(c.Booth.ListByExpo))
	mux.HandleFunc("POST /exhibitor/booths/{boothID}/book", exhibitor(c.Booth.BookBooth))
	mux.HandleFunc("POST /attendee/boothvisit/{expoID}/{boothID}", auth(c.Booth.RecordVisit))

	// AI
	mux.HandleFunc("POST /ai/recommendations", auth(c.AI.Recommend))
	mux.HandleFunc("POST /ai/match-score", auth(c.AI.MatchScore))
	mux.HandleFunc("POST /ai/itinerary", auth(c.AI.PlanItinerary))
	mux.HandleFunc("POST /ai/description", auth(c.AI.GenerateDescription))
	mux.HandleFunc("POST /ai/booth-audit", auth(c.AI.AuditBooth))

	// Notifications
	mux.HandleFunc("GET /notifications", auth(c.Notification.GetFeed))
	mux.HandleFunc("POST /notifications/read", auth(c.Notification.MarkAllRead))

	// Messages
	mux.HandleFunc("POST /messages", auth(c.Message.Send))
	mux.HandleFunc("GET /messages", auth(c.Message.ListMine))

	// Admin
	mux.HandleFunc("POST /admin/expos", admin(c.Expo.Create))
	mux.HandleFunc("PUT /admin/expos/{expoID}", admin(c.Expo.Update))
	mux.HandleFunc("PATCH /admin/expos/{expoID}/status", admin(c.Expo.ToggleStatus))
	mux.HandleFunc("DELETE /admin/expos/{expoID}", admin(c.Expo.Delete))
	mux.HandleFunc("POST /admin/expos/{expoID}/booths", admin(c.Booth.CreateBooth))
	mux.HandleFunc("POST /admin/expos/{expoID}/schedules", admin(c.Schedule.Create))
	mux.HandleFunc("PUT /admin/expos/{expoID}/schedules", admin(c.Schedule.BulkUpsert))
	mux.HandleFunc("PATCH /admin/schedules/{scheduleID}/status", admin(c.Schedule.ToggleStatus))
	mux.HandleFunc("DELETE /admin/schedules/{scheduleID}", admin(c.Schedule.Delete))
	mux.HandleFunc("POST /admin/sessions", admin(c.Session.Create))
	mux.HandleFunc("PUT /admin/sessions/{sessionID}", admin(c.Session.Update))
	mux.HandleFunc("PATCH /admin/sessions/{sessionID}/status", admin(c.Session.ToggleStatus))
	mux.HandleFunc("DELETE /admin/sessions/{sessionID}", admin(c.Session.Delete))
	mux.HandleFunc("GET /admin/expos/{expoID}/registrations", admin(c.Registration.ListExpoRegistrations))
	mux.HandleFunc("POST /admin/expos/{expoID}/registrations", admin(c.Registration.RegisterAttendeeByAdmin))
	mux.HandleFunc("PATCH /admin/registrations/{registrationID}", admin(c.Registration.UpdateExpoRegistration))
	mux.HandleFunc("DELETE /admin/registrations/sessions/{registrationID}", admin(c.Registration.DeleteSessionRegistration))
	mux.HandleFunc("POST /admin/booths/{boothID}/unbook", admin(c.Booth.UnbookBooth))
	mux.HandleFunc("DELETE /admin/booths/{boothID}", admin(c.Booth.DeleteBooth))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
