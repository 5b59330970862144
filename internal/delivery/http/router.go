package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"chainpass/internal/delivery/http/controllers"
	"chainpass/internal/delivery/http/middleware"
	"chainpass/internal/domain"
)

// RouterConfig bundles the controllers and auth wiring for NewRouter.
type RouterConfig struct {
	Events        *controllers.EventController
	Registrations *controllers.RegistrationController
	Escrow        *controllers.EscrowController
	Tickets       *controllers.TicketController
	Auth          *controllers.AuthController // nil outside development
	Verifier      domain.TokenVerifier
	Logger        *slog.Logger
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)

	// Events
	mux.HandleFunc("POST /events", requireAuth(cfg.Events.CreateEvent))
	mux.HandleFunc("GET /events/counter", cfg.Events.EventCounter)
	mux.HandleFunc("GET /events/{eventID}", cfg.Events.GetEvent)
	mux.HandleFunc("GET /events/{eventID}/records", cfg.Events.ListRecords)
	mux.HandleFunc("POST /events/{eventID}/registration/open", requireAuth(cfg.Events.OpenRegistration))
	mux.HandleFunc("POST /events/{eventID}/registration/close", requireAuth(cfg.Events.CloseRegistration))
	mux.HandleFunc("POST /events/{eventID}/registration/pause", requireAuth(cfg.Events.PauseRegistration))
	mux.HandleFunc("POST /events/{eventID}/registration/reopen", requireAuth(cfg.Events.ReopenRegistration))

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", requireAuth(cfg.Registrations.Register))
	mux.HandleFunc("DELETE /events/{eventID}/registrations", requireAuth(cfg.Registrations.Cancel))
	mux.HandleFunc("GET /events/{eventID}/participants", cfg.Registrations.ListParticipants)
	mux.HandleFunc("GET /events/{eventID}/participants/{identity}", cfg.Registrations.IsRegistered)

	// Escrow
	mux.HandleFunc("POST /events/{eventID}/withdrawal", requireAuth(cfg.Escrow.Withdraw))

	// Tickets
	mux.HandleFunc("GET /tickets/{ticketID}/uri", cfg.Tickets.URI)
	mux.HandleFunc("GET /tickets/{ticketID}/balances/{identity}", cfg.Tickets.Balance)
	mux.HandleFunc("PUT /tickets/uri", requireAuth(cfg.Tickets.SetURI))
	mux.HandleFunc("GET /owner", cfg.Tickets.Owner)

	// Auth (development only)
	if cfg.Auth != nil {
		mux.HandleFunc("POST /auth/token", cfg.Auth.Token)
	}

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
