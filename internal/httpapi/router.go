package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"agencydesk/internal/agent"
	"agencydesk/internal/api"
	"agencydesk/internal/auth"
	"agencydesk/internal/booking"
	"agencydesk/internal/customer"
	"agencydesk/internal/fareclass"
	"agencydesk/internal/payment"
	"agencydesk/internal/sector"
	"agencydesk/internal/slipstore"
	"agencydesk/internal/task"
	"agencydesk/internal/tourbooking"
	"agencydesk/internal/tourproduct"
	"agencydesk/internal/verifier"
	"agencydesk/pkg/config"
	"agencydesk/pkg/metrics"
)

type Dependencies struct {
	Cfg     config.Config
	DB      *pgxpool.Pool
	Log     *zap.SugaredLogger
	Metrics *metrics.Metrics
	Slips   *slipstore.Store
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(api.MetricsMiddleware(deps.Metrics))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	agentsRepo := agent.NewRepository(deps.DB)
	authHandlers := auth.Handlers{Cfg: deps.Cfg, Agents: agentsRepo, Log: deps.Log}

	customerHandlers := customer.Handlers{Repo: customer.NewRepository(deps.DB), Log: deps.Log}
	sectorHandlers := sector.Handlers{Repo: sector.NewRepository(deps.DB), Log: deps.Log}
	fareClassHandlers := fareclass.Handlers{Repo: fareclass.NewRepository(deps.DB), Log: deps.Log}
	bookingHandlers := booking.Handlers{DB: deps.DB, Repo: booking.NewRepository(deps.DB), Log: deps.Log}

	tourProductRepo := tourproduct.NewRepository(deps.DB)
	tourProductHandlers := tourproduct.Handlers{Repo: tourProductRepo, Log: deps.Log}
	tourBookingHandlers := tourbooking.Handlers{
		DB:       deps.DB,
		Repo:     tourbooking.NewRepository(deps.DB),
		Products: tourProductRepo,
		Log:      deps.Log,
	}
	paymentHandlers := payment.Handlers{
		Cfg:     deps.Cfg,
		DB:      deps.DB,
		Repo:    payment.NewRepository(deps.DB),
		Store:   deps.Slips,
		Metrics: deps.Metrics,
		Log:     deps.Log,
	}
	verifierHandlers := verifier.Handlers{Cfg: deps.Cfg, DB: deps.DB, Metrics: deps.Metrics, Log: deps.Log}
	slipHandlers := slipstore.Handlers{Cfg: deps.Cfg, Store: deps.Slips, Log: deps.Log}
	taskHandlers := task.Handlers{DB: deps.DB, Repo: task.NewRepository(deps.DB), Log: deps.Log}

	r.Route("/v1", func(r chi.Router) {
		// The back-office frontend runs on its own origin.
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAgeSeconds:  600,
		}))

		r.Post("/auth/login", authHandlers.Login)

		// Signed expiring URLs; no session so slips open in a plain tab.
		r.Get("/slips/{id}", slipHandlers.Download)

		// Machine-to-machine, authenticated by HMAC over the body.
		r.Post("/verifier/callback", verifierHandlers.Callback)

		r.Group(func(r chi.Router) {
			r.Use(api.SessionAuth(deps.Cfg, agentsRepo))

			r.Get("/auth/me", authHandlers.Me)

			r.Get("/customers", customerHandlers.List)
			r.Post("/customers", customerHandlers.Create)
			r.Get("/customers/{id}", customerHandlers.Get)
			r.Put("/customers/{id}", customerHandlers.Update)
			r.Delete("/customers/{id}", customerHandlers.Delete)

			r.Get("/sectors", sectorHandlers.List)
			r.Post("/sectors", sectorHandlers.Create)
			r.Put("/sectors/{id}", sectorHandlers.Update)
			r.Delete("/sectors/{id}", sectorHandlers.Delete)

			r.Get("/fare-classes", fareClassHandlers.List)
			r.Post("/fare-classes", fareClassHandlers.Create)
			r.Put("/fare-classes/{id}", fareClassHandlers.Update)
			r.Delete("/fare-classes/{id}", fareClassHandlers.Delete)

			r.Get("/bookings", bookingHandlers.List)
			r.Post("/bookings", bookingHandlers.Create)
			r.Get("/bookings/{id}", bookingHandlers.Get)
			r.Put("/bookings/{id}", bookingHandlers.Update)
			r.Delete("/bookings/{id}", bookingHandlers.Delete)
			r.Put("/bookings/{id}/sectors/{sectorId}", bookingHandlers.UpdateSector)
			r.Post("/bookings/{id}/override-status", bookingHandlers.OverrideStatus)
			r.Get("/bookings/{id}/events", bookingHandlers.Events)

			r.Get("/tour-products", tourProductHandlers.List)
			r.Post("/tour-products", tourProductHandlers.Create)
			r.Put("/tour-products/{id}", tourProductHandlers.Update)
			r.Delete("/tour-products/{id}", tourProductHandlers.Delete)

			r.Get("/tour-bookings", tourBookingHandlers.List)
			r.Post("/tour-bookings", tourBookingHandlers.Create)
			r.Get("/tour-bookings/{id}", tourBookingHandlers.Get)
			r.Put("/tour-bookings/{id}", tourBookingHandlers.Update)
			r.Get("/tour-bookings/{id}/payments", paymentHandlers.List)
			r.Post("/tour-bookings/{id}/payments", paymentHandlers.Upload)

			r.Get("/tasks", taskHandlers.List)
			r.Post("/tasks", taskHandlers.Create)
			r.Put("/tasks/{id}", taskHandlers.Update)
			r.Delete("/tasks/{id}", taskHandlers.Delete)
		})
	})

	return r
}
