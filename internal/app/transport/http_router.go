package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/config"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flyair-flight-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	sessions httptransport.SessionResolver,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Route("/flights", func(router chi.Router) {
			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.Flight.ListFlights,
				httptransport.NoRequest,
				httptransport.ResponseWithBody,
			))
			router.Post("/search", httptransport.MakeHandlerFunc(
				endpts.Flight.SearchFlights,
				httptransport.DecodeRequest[dto.SearchCriteria],
				httptransport.ResponseWithBody,
			))
			router.Get("/last-update", httptransport.MakeHandlerFunc(
				endpts.Flight.LastUpdate,
				httptransport.NoRequest,
				httptransport.ResponseWithBody,
			))
			router.With(httptransport.Authenticate(sessions)).Post("/refresh", httptransport.MakeHandlerFunc(
				endpts.Flight.RefreshFlights,
				httptransport.DecodeRequest[dto.RefreshRequest],
				httptransport.ResponseWithBody,
			))
			router.Get("/{id}", httptransport.MakeHandlerFunc(
				endpts.Flight.GetFlight,
				httptransport.DecodePathParam("id"),
				httptransport.ResponseWithBody,
			))
		})

		router.Route("/auth", func(router chi.Router) {
			router.Post("/register", httptransport.MakeHandlerFunc(
				endpts.Account.Register,
				httptransport.DecodeRequest[dto.RegisterRequest],
				httptransport.CreatedResponse,
			))
			router.Post("/login", httptransport.MakeHandlerFunc(
				endpts.Account.Login,
				httptransport.DecodeRequest[dto.LoginRequest],
				httptransport.ResponseWithBody,
			))
			router.Post("/password-reset", httptransport.MakeHandlerFunc(
				endpts.Account.RequestPasswordReset,
				httptransport.DecodeRequest[dto.PasswordResetRequest],
				httptransport.ResponseWithBody,
			))
			router.With(httptransport.Authenticate(sessions)).Post("/logout", httptransport.MakeHandlerFunc(
				endpts.Account.Logout,
				httptransport.NoRequest,
				httptransport.NoContentResponse,
			))
		})

		router.Group(func(router chi.Router) {
			router.Use(httptransport.Authenticate(sessions))

			router.Get("/profile", httptransport.MakeHandlerFunc(
				endpts.Account.GetProfile,
				httptransport.NoRequest,
				httptransport.ResponseWithBody,
			))
			router.Put("/profile", httptransport.MakeHandlerFunc(
				endpts.Account.UpdateProfile,
				httptransport.DecodeRequest[dto.UpdateProfileRequest],
				httptransport.ResponseWithBody,
			))
			router.Post("/reservations", httptransport.MakeHandlerFunc(
				endpts.Reservation.ConfirmReservation,
				httptransport.DecodeRequest[dto.ReservationRequest],
				httptransport.CreatedResponse,
			))
			router.Get("/reservations", httptransport.MakeHandlerFunc(
				endpts.Reservation.ListReservations,
				httptransport.NoRequest,
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}
