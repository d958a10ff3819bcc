package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/parentsluxuria/wellness-platform/internal/admin"
	"github.com/parentsluxuria/wellness-platform/internal/appointments"
	"github.com/parentsluxuria/wellness-platform/internal/booking"
	"github.com/parentsluxuria/wellness-platform/internal/catalog"
	"github.com/parentsluxuria/wellness-platform/internal/events"
	httpmiddleware "github.com/parentsluxuria/wellness-platform/internal/http/middleware"
	"github.com/parentsluxuria/wellness-platform/internal/identity"
	"github.com/parentsluxuria/wellness-platform/internal/navigation"
	"github.com/parentsluxuria/wellness-platform/internal/notify"
	"github.com/parentsluxuria/wellness-platform/internal/partner"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger *logging.Logger

	Sessions            *identity.Manager
	IdentityHandler     *identity.Handler
	NavigationHandler   *navigation.Handler
	BookingHandler      *booking.Handler
	AppointmentsHandler *appointments.Handler
	PartnerHandler      *partner.Handler
	CatalogHandler      *catalog.Handler
	EventsHandler       *events.Handler
	AdminHandler        *admin.Handler
	NoticesHandler      *notify.Handler

	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Auth endpoints rate limit (requests/sec per IP, 0 disables).
	AuthRateLimit float64
	AuthRateBurst int
}

// New creates the Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints: health, metrics, session bootstrap, the catalog, and
	// the community calendar.
	r.Group(func(public chi.Router) {
		public.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.IdentityHandler != nil {
			public.Post("/session/start", cfg.IdentityHandler.StartSession)
		}
		if cfg.CatalogHandler != nil {
			public.Get("/catalog/modules", cfg.CatalogHandler.ListModules)
			public.Get("/catalog/modules/{moduleID}/services", cfg.CatalogHandler.ListServices)
		}
		if cfg.EventsHandler != nil {
			public.Get("/events", cfg.EventsHandler.List)
		}
	})

	// Session-scoped endpoints: everything that reads or mutates per-session
	// state sits behind the session token.
	r.Group(func(session chi.Router) {
		session.Use(httpmiddleware.SessionAuth(cfg.Sessions))

		if cfg.IdentityHandler != nil {
			session.Route("/auth", func(auth chi.Router) {
				if cfg.AuthRateLimit > 0 {
					auth.Use(httpmiddleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst))
				}
				auth.Post("/login", cfg.IdentityHandler.Login)
				auth.Post("/register", cfg.IdentityHandler.Register)
				auth.Post("/logout", cfg.IdentityHandler.Logout)
				auth.Get("/me", cfg.IdentityHandler.Me)
				auth.Post("/forgot-password", cfg.IdentityHandler.ForgotPassword)
				auth.Post("/verify-otp", cfg.IdentityHandler.VerifyOTP)
				auth.Post("/reset-password", cfg.IdentityHandler.ResetPassword)
			})
		}

		if cfg.NavigationHandler != nil {
			session.Route("/nav", func(nav chi.Router) {
				nav.Get("/state", cfg.NavigationHandler.GetState)
				nav.Get("/page", cfg.NavigationHandler.GetPage)
				nav.Post("/goto", cfg.NavigationHandler.Goto)
				nav.Post("/select-module", cfg.NavigationHandler.SelectModule)
				nav.Post("/select-service", cfg.NavigationHandler.SelectService)
			})
		}

		if cfg.BookingHandler != nil {
			session.Route("/booking", func(b chi.Router) {
				b.Post("/start", cfg.BookingHandler.Start)
				b.Get("/state", cfg.BookingHandler.GetState)
				b.Post("/date", cfg.BookingHandler.SelectDate)
				b.Post("/time", cfg.BookingHandler.SelectTime)
				b.Post("/back", cfg.BookingHandler.Back)
				b.Post("/confirm", cfg.BookingHandler.Confirm)
			})
		}

		if cfg.AppointmentsHandler != nil {
			session.Get("/appointments", cfg.AppointmentsHandler.List)
			session.Post("/appointments", cfg.AppointmentsHandler.Create)
		}

		if cfg.EventsHandler != nil {
			session.Post("/events/{eventID}/register", cfg.EventsHandler.Register)
		}

		if cfg.NoticesHandler != nil {
			session.Get("/notifications", cfg.NoticesHandler.Drain)
			session.Get("/notifications/stream", cfg.NoticesHandler.Stream)
		}

		if cfg.PartnerHandler != nil {
			session.Route("/partner", func(p chi.Router) {
				p.Use(httpmiddleware.RequireRole(cfg.Sessions, identity.RolePartner))
				p.Get("/requests", cfg.PartnerHandler.Pending)
				p.Get("/accepted", cfg.PartnerHandler.Accepted)
				p.Post("/requests/{requestID}/accept", cfg.PartnerHandler.Accept)
				p.Post("/requests/{requestID}/decline", cfg.PartnerHandler.Decline)
			})
		}

		if cfg.AdminHandler != nil {
			session.Route("/admin", func(a chi.Router) {
				a.Use(httpmiddleware.RequireRole(cfg.Sessions, identity.RoleAdmin))
				a.Get("/stats", cfg.AdminHandler.GetStats)

				a.Get("/users", cfg.AdminHandler.ListUsers)
				a.Post("/users", cfg.AdminHandler.CreateUser)
				a.Put("/users/{id}", cfg.AdminHandler.UpdateUser)
				a.Delete("/users/{id}", cfg.AdminHandler.DeleteUser)

				a.Get("/services", cfg.AdminHandler.ListServices)
				a.Post("/services", cfg.AdminHandler.CreateService)
				a.Put("/services/{id}", cfg.AdminHandler.UpdateService)
				a.Delete("/services/{id}", cfg.AdminHandler.DeleteService)

				a.Get("/bookings", cfg.AdminHandler.ListBookings)
				a.Post("/bookings", cfg.AdminHandler.CreateBooking)
				a.Put("/bookings/{id}", cfg.AdminHandler.UpdateBooking)
				a.Delete("/bookings/{id}", cfg.AdminHandler.DeleteBooking)

				a.Get("/events", cfg.AdminHandler.ListEvents)
				a.Post("/events", cfg.AdminHandler.CreateEvent)
				a.Put("/events/{id}", cfg.AdminHandler.UpdateEvent)
				a.Delete("/events/{id}", cfg.AdminHandler.DeleteEvent)
			})
		}
	})

	return r
}
