package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/media"
	"github.com/vladislavdragonenkov/cardapio/internal/receipt"
	"github.com/vladislavdragonenkov/cardapio/internal/service/catalog"
	"github.com/vladislavdragonenkov/cardapio/internal/service/reporting"
)

const maxListLimit = 500

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	token, err := s.deps.Gate.Login(req.Username, req.Password)
	if err != nil {
		s.logger.WithField("username", req.Username).Warn("admin login rejected")
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"access_token": token.AccessToken,
		"token_type":   "Bearer",
		"expires_at":   token.ExpiresAt,
	})
}

// listOrders поддерживает опрос: since (RFC3339) возвращает только более новые заказы.
func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := s.orderFilter(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	orders, err := s.deps.Orders.List(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	respond(w, http.StatusOK, orderListView{
		Orders:                 views,
		ServerTime:             time.Now().UTC(),
		RefreshIntervalSeconds: int(s.deps.RefreshInterval.Seconds()),
	})
}

func (s *Server) orderFilter(r *http.Request) (domain.OrderFilter, error) {
	q := r.URL.Query()

	dates, err := reporting.ParseDateRange(q.Get("from"), q.Get("to"), s.deps.Reports.Location())
	if err != nil {
		return domain.OrderFilter{}, badRequest(err.Error())
	}
	filter := dates.Filter(s.deps.Reports.Location())

	if raw := strings.TrimSpace(q.Get("since")); raw != "" {
		since, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return domain.OrderFilter{}, badRequest("since must be RFC3339")
		}
		filter.Since = since
	}
	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		status, err := domain.ParseOrderStatus(raw)
		if err != nil {
			return domain.OrderFilter{}, badRequest(err.Error())
		}
		filter.Status = status
	}
	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return domain.OrderFilter{}, badRequest("limit must be a positive integer")
		}
		filter.Limit = min(limit, maxListLimit)
	}
	return filter, nil
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.deps.Orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, newOrderView(order))
}

func (s *Server) markDelivered(w http.ResponseWriter, r *http.Request) {
	order, err := s.deps.Orders.MarkDelivered(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, newOrderView(order))
}

func (s *Server) removeOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Orders.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) buildReport(r *http.Request) (reporting.Report, error) {
	q := r.URL.Query()
	dates, err := reporting.ParseDateRange(q.Get("from"), q.Get("to"), s.deps.Reports.Location())
	if err != nil {
		return reporting.Report{}, badRequest(err.Error())
	}
	return s.deps.Reports.Build(r.Context(), dates)
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.buildReport(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, newReportView(report))
}

func (s *Server) reportPDF(w http.ResponseWriter, r *http.Request) {
	report, err := s.buildReport(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := receipt.ReportBytes(report, s.deps.Receipt)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writePDF(w, "relatorio.pdf", data)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.deps.Catalog.ListCategories(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryView(c))
	}
	respond(w, http.StatusOK, map[string]any{"categories": out})
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	category, err := s.deps.Catalog.CreateCategory(r.Context(), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, newCategoryView(category))
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Catalog.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.deps.Catalog.ListProducts(r.Context(), r.URL.Query().Get("category_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{"products": newProductViews(products)})
}

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageRef    string          `json:"image_ref"`
	CategoryID  string          `json:"category_id"`
}

func (p productRequest) input() catalog.ProductInput {
	return catalog.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageRef:    p.ImageRef,
		CategoryID:  p.CategoryID,
	}
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	product, err := s.deps.Catalog.CreateProduct(r.Context(), req.input())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, newProductView(product))
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	product, err := s.deps.Catalog.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, newProductView(product))
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Catalog.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) uploadProductImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := s.deps.Catalog.GetProduct(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ref, err := s.saveUpload(r, "image")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.deps.Catalog.UpdateProduct(r.Context(), id, catalog.ProductInput{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageRef:    ref,
		CategoryID:  product.CategoryID,
	})
	if err != nil {
		s.dropMedia(ref)
		s.writeError(w, r, err)
		return
	}
	if product.ImageRef != ref {
		s.dropMedia(product.ImageRef)
	}
	respond(w, http.StatusOK, newProductView(updated))
}

func (s *Server) saveUpload(r *http.Request, field string) (string, error) {
	if s.deps.Media == nil {
		return "", badRequest("media storage is not configured")
	}
	r.Body = http.MaxBytesReader(nil, r.Body, media.MaxUploadSize+1<<20)
	file, header, err := r.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return "", fmt.Errorf("%w: request body exceeds %d bytes", media.ErrTooLarge, tooLarge.Limit)
		case errors.Is(err, http.ErrMissingFile):
			return "", badRequest("multipart field " + field + " is required")
		default:
			return "", badRequest("invalid multipart body: " + err.Error())
		}
	}
	defer file.Close()

	return s.deps.Media.Save(header.Filename, file)
}

func (s *Server) settingsView(r *http.Request) (settingsView, error) {
	cfg, err := s.deps.Store.Get(r.Context())
	if err != nil {
		return settingsView{}, err
	}
	return settingsView{
		storeView:              newStoreView(cfg),
		RefreshIntervalSeconds: int(s.deps.RefreshInterval.Seconds()),
		LoginRequired:          s.deps.Gate.Required(),
		UpdatedAt:              cfg.UpdatedAt,
	}, nil
}

func (s *Server) respondSettings(w http.ResponseWriter, r *http.Request) {
	view, err := s.settingsView(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, view)
}

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	s.respondSettings(w, r)
}

type openRequest struct {
	Open *bool `json:"open"`
}

func (s *Server) setOpen(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Open == nil {
		s.writeError(w, r, badRequest("open is required"))
		return
	}
	if _, err := s.deps.Store.SetOpen(r.Context(), *req.Open); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondSettings(w, r)
}

type contactRequest struct {
	ContactNumber string `json:"contact_number"`
}

func (s *Server) setContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if _, err := s.deps.Store.SetContact(r.Context(), req.ContactNumber); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondSettings(w, r)
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (s *Server) setTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if _, err := s.deps.Store.SetTheme(r.Context(), req.Theme); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondSettings(w, r)
}

func (s *Server) uploadLogo(w http.ResponseWriter, r *http.Request) {
	ref, err := s.saveUpload(r, "logo")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	previous, err := s.deps.Store.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if _, err := s.deps.Store.SetLogo(r.Context(), ref); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.dropMedia(previous.LogoRef)
	s.respondSettings(w, r)
}

func (s *Server) removeLogo(w http.ResponseWriter, r *http.Request) {
	previous, err := s.deps.Store.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if _, err := s.deps.Store.SetLogo(r.Context(), ""); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.dropMedia(previous.LogoRef)
	s.respondSettings(w, r)
}

func (s *Server) dropMedia(ref string) {
	if ref == "" || s.deps.Media == nil {
		return
	}
	if err := s.deps.Media.Delete(ref); err != nil {
		s.logger.WithError(err).WithField("media", ref).Warn("delete media failed")
	}
}
