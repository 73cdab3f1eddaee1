package wire

import (
	"net/http"

	"cinemabook/internal/adaptor"
	"cinemabook/internal/data/repository"
	"cinemabook/internal/usecase"
	"cinemabook/pkg/metrics"
	"cinemabook/pkg/middleware"
	"cinemabook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, m *metrics.Metrics, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, m, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, m, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router.
func setupRouter(
	handler *adaptor.Handler,
	m *metrics.Metrics,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(m))

	// Apply routes
	wireCatalog(r, handler.Catalog)
	wireSession(r, handler.Session)
	wireBooking(r, handler.Booking)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
