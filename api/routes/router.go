package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/almashriq-motors/dealership-backend/api/controllers"
	"github.com/almashriq-motors/dealership-backend/api/middleware"
	"github.com/almashriq-motors/dealership-backend/internal/cars"
	"github.com/almashriq-motors/dealership-backend/internal/contacts"
	"github.com/almashriq-motors/dealership-backend/internal/uploads"
	"github.com/almashriq-motors/dealership-backend/pkg/config"
	"github.com/almashriq-motors/dealership-backend/pkg/db"
	"github.com/almashriq-motors/dealership-backend/pkg/logger"
	"github.com/almashriq-motors/dealership-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	carService cars.Service,
	contactService contacts.Service,
	uploadService uploads.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cars", func(r chi.Router) {
			r.Get("/", controllers.ListCars(carService, logg))
			r.Get("/featured", controllers.FeaturedCars(carService, logg))
			r.Get("/{carId}", controllers.GetCar(carService, logg))
		})
		r.Post("/contacts", controllers.CreateContact(contactService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/cars", func(r chi.Router) {
			r.Get("/", controllers.AdminListCars(carService, logg))
			r.Post("/", controllers.AdminCreateCar(carService, uploadService, logg))
			r.Patch("/{carId}", controllers.AdminUpdateCar(carService, uploadService, logg))
			r.Delete("/{carId}", controllers.AdminDeleteCar(carService, logg))
		})
		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", controllers.AdminListContacts(contactService, logg))
			r.Get("/unread", controllers.AdminUnreadContacts(contactService, logg))
			r.Post("/{contactId}/read", controllers.AdminMarkContactRead(contactService, logg))
			r.Delete("/{contactId}", controllers.AdminDeleteContact(contactService, logg))
		})
	})

	// Stored attachments are served straight off disk.
	r.Handle(cfg.Media.PublicBasePath+"/*", http.StripPrefix(
		cfg.Media.PublicBasePath+"/",
		http.FileServer(http.Dir(cfg.Media.Dir)),
	))

	return r
}
