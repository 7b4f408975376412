package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/farmshop-si/farmshop-backend/api/controllers"
	"github.com/farmshop-si/farmshop-backend/api/middleware"
	authsvc "github.com/farmshop-si/farmshop-backend/internal/auth"
	cartsvc "github.com/farmshop-si/farmshop-backend/internal/cart"
	"github.com/farmshop-si/farmshop-backend/internal/catalog"
	checkoutsvc "github.com/farmshop-si/farmshop-backend/internal/checkout"
	"github.com/farmshop-si/farmshop-backend/internal/gifts"
	"github.com/farmshop-si/farmshop-backend/pkg/auth/session"
	"github.com/farmshop-si/farmshop-backend/pkg/config"
	"github.com/farmshop-si/farmshop-backend/pkg/flags"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"github.com/farmshop-si/farmshop-backend/pkg/metrics"
)

// EventPublisher bundles the analytics emitters the routes need.
type EventPublisher interface {
	controllers.PageEventPublisher
	controllers.CartEventPublisher
	controllers.GiftEventPublisher
}

// Params carries everything the router wires together.
type Params struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.HTTPMetrics

	// Gatherer feeds the /metrics endpoint. Usually the same registry the
	// metric structs were built from.
	Gatherer prometheus.Gatherer

	HealthChecks map[string]controllers.Pinger

	FlagRegistry   *flags.Registry
	SessionChecker session.AccessSessionChecker

	AuthService     authsvc.Service
	CatalogService  *catalog.Service
	GiftService     *gifts.Service
	CartService     *cartsvc.Service
	CheckoutService *checkoutsvc.Service
	Events          EventPublisher
}

func NewRouter(p Params) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(),
		middleware.Metrics(p.Metrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.HealthChecks))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(p.CatalogService, p.Logger))
		r.Get("/products/{slug}", controllers.GetProduct(p.CatalogService, p.Logger))

		r.Get("/gift-packages", controllers.ListGiftPackages(p.GiftService, p.FlagRegistry, p.Logger))
		r.Get("/gift-packages/{id}", controllers.GetGiftPackage(p.GiftService, p.FlagRegistry, p.Events, p.Logger))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(p.CartService, p.Logger))
			r.Post("/items", controllers.CartAddProduct(p.CartService, p.Events, p.Logger))
			r.Post("/gifts", controllers.CartAddGift(p.CartService, p.Events, p.Logger))
			r.Patch("/items/{itemID}", controllers.CartUpdateItem(p.CartService, p.Logger))
			r.Delete("/items/{itemID}", controllers.CartRemoveItem(p.CartService, p.Logger))
		})

		r.Get("/flags", controllers.PublicFlags(p.FlagRegistry, p.Logger))

		r.Post("/checkout", controllers.PlaceOrder(p.CheckoutService, p.Logger))
		r.Get("/orders/{number}", controllers.GetOrder(p.CheckoutService, p.Logger))

		r.Post("/events", controllers.IngestEvent(p.Events, p.Logger))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(p.AuthService, p.Logger))
			r.Post("/refresh", controllers.AuthRefresh(p.AuthService, p.Logger))
			r.Post("/logout", controllers.AuthLogout(p.AuthService, p.Logger))
		})

		r.Route("/flags", func(r chi.Router) {
			r.Use(middleware.AdminAuth(p.Config.JWT, p.SessionChecker, p.Logger))
			r.Get("/", controllers.AdminListFlags(p.FlagRegistry, p.Logger))
			r.Post("/reset", controllers.AdminResetFlags(p.FlagRegistry, p.Logger))
			r.Post("/{id}/toggle", controllers.AdminToggleFlag(p.FlagRegistry, p.Logger))
			r.Post("/{id}/enable", controllers.AdminEnableFlag(p.FlagRegistry, p.Logger))
			r.Post("/{id}/disable", controllers.AdminDisableFlag(p.FlagRegistry, p.Logger))
		})
	})

	return r
}
