// Package httpapi: публичный и административный HTTP API витрины.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/vladislavdragonenkov/cardapio/internal/auth"
	"github.com/vladislavdragonenkov/cardapio/internal/media"
	"github.com/vladislavdragonenkov/cardapio/internal/receipt"
	"github.com/vladislavdragonenkov/cardapio/internal/service/cart"
	"github.com/vladislavdragonenkov/cardapio/internal/service/catalog"
	"github.com/vladislavdragonenkov/cardapio/internal/service/idempotency"
	"github.com/vladislavdragonenkov/cardapio/internal/service/ordering"
	"github.com/vladislavdragonenkov/cardapio/internal/service/reporting"
	"github.com/vladislavdragonenkov/cardapio/internal/service/storeconfig"
)

const defaultRefreshInterval = 30 * time.Second

// Deps: сервисы, которые обслуживает API.
type Deps struct {
	Catalog     *catalog.Service
	Carts       *cart.Service
	Orders      *ordering.Service
	Store       *storeconfig.Service
	Reports     *reporting.Service
	Gate        *auth.Gate
	Media       *media.Store
	Idempotency *idempotency.Guard
	// SubmitLimiter ограничивает частоту оформления заказов; nil, без ограничения.
	SubmitLimiter *rate.Limiter
	Receipt       receipt.Options
	// RefreshInterval: рекомендуемый период опроса списка заказов админкой.
	RefreshInterval time.Duration
	// SessionTTL: срок жизни cookie сессии.
	SessionTTL   time.Duration
	SecureCookie bool
	Logger       *log.Entry
}

// Server держит зависимости обработчиков.
type Server struct {
	deps   Deps
	logger *log.Entry
}

// NewServer создаёт Server.
func NewServer(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = log.WithField("component", "http-api")
	}
	if deps.RefreshInterval <= 0 {
		deps.RefreshInterval = defaultRefreshInterval
	}
	if deps.SessionTTL <= 0 {
		deps.SessionTTL = 24 * time.Hour
	}
	return &Server{deps: deps, logger: deps.Logger}
}

// Routes собирает роутер.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/media/{name}", s.serveMedia)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.session)

			r.Get("/store", s.getStore)
			r.Get("/menu", s.getMenu)

			r.Get("/cart", s.getCart)
			r.Post("/cart/items", s.addCartItem)
			r.Delete("/cart", s.clearCart)

			r.With(rateLimit(s.deps.SubmitLimiter)).Post("/orders", s.submitOrder)
			r.Get("/orders/{id}/receipt", s.orderReceipt)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", s.login)

			r.Group(func(r chi.Router) {
				r.Use(s.adminOnly)

				r.Get("/orders", s.listOrders)
				r.Get("/orders/{id}", s.getOrder)
				r.Post("/orders/{id}/delivered", s.markDelivered)
				r.Delete("/orders/{id}", s.removeOrder)
				r.Get("/orders/{id}/receipt", s.orderReceipt)

				r.Get("/reports", s.getReport)
				r.Get("/reports/pdf", s.reportPDF)

				r.Get("/categories", s.listCategories)
				r.Post("/categories", s.createCategory)
				r.Delete("/categories/{id}", s.deleteCategory)

				r.Get("/products", s.listProducts)
				r.Post("/products", s.createProduct)
				r.Put("/products/{id}", s.updateProduct)
				r.Delete("/products/{id}", s.deleteProduct)
				r.Post("/products/{id}/image", s.uploadProductImage)

				r.Get("/settings", s.getSettings)
				r.Put("/settings/open", s.setOpen)
				r.Put("/settings/contact", s.setContact)
				r.Put("/settings/theme", s.setTheme)
				r.Post("/settings/logo", s.uploadLogo)
				r.Delete("/settings/logo", s.removeLogo)
			})
		})
	})

	return r
}
