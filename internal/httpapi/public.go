package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/receipt"
	"github.com/vladislavdragonenkov/cardapio/internal/service/idempotency"
	"github.com/vladislavdragonenkov/cardapio/internal/service/ordering"
)

const idempotencyHeader = "Idempotency-Key"

func (s *Server) getStore(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.deps.Store.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, newStoreView(cfg))
}

// getMenu отдаёт меню, только пока магазин открыт.
func (s *Server) getMenu(w http.ResponseWriter, r *http.Request) {
	open, err := s.deps.Store.IsOpen(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !open {
		s.writeError(w, r, domain.ErrStoreClosed)
		return
	}

	sections, err := s.deps.Catalog.Menu(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]menuSectionView, 0, len(sections))
	for _, section := range sections {
		out = append(out, menuSectionView{
			Category: newCategoryView(section.Category),
			Products: newProductViews(section.Products),
		})
	}
	respond(w, http.StatusOK, map[string]any{"sections": out})
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := s.deps.Carts.Get(r.Context(), SessionFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, newCartView(c))
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		s.writeError(w, r, badRequest("product_id is required"))
		return
	}

	c, err := s.deps.Carts.AddProduct(r.Context(), SessionFrom(r.Context()), req.ProductID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, newCartView(c))
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Carts.Clear(r.Context(), SessionFrom(r.Context())); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type submitOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
	Note          string `json:"note"`
}

// submitOrder оформляет заказ. С заголовком Idempotency-Key повторный запрос
// той же сессии получает сохранённый ответ.
func (s *Server) submitOrder(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
	if err != nil {
		s.writeError(w, r, badRequest("read body: "+err.Error()))
		return
	}
	var req submitOrderRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, badRequest("invalid JSON body: "+err.Error()))
		return
	}

	sessionID := SessionFrom(r.Context())
	resp, err := s.deps.Idempotency.Do(r.Context(), r.Header.Get(idempotencyHeader), "orders:"+sessionID, raw,
		func(ctx context.Context) idempotency.Response {
			return s.placeOrder(ctx, sessionID, req)
		})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if resp.Replayed {
		w.Header().Set("Idempotent-Replayed", "true")
	}
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}

func (s *Server) placeOrder(ctx context.Context, sessionID string, req submitOrderRequest) idempotency.Response {
	result, err := s.deps.Orders.Submit(ctx, ordering.SubmitRequest{
		SessionID:     sessionID,
		CustomerName:  req.CustomerName,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
	})
	if err != nil {
		status, body := errorPayload(err)
		if status >= 500 {
			s.logger.WithError(err).WithField("session_id", sessionID).Error("submit order failed")
		}
		return idempotency.Response{Status: status, Body: body}
	}

	body, err := json.Marshal(submitView{
		Order:        newOrderView(result.Order),
		WhatsAppLink: result.WhatsAppLink,
		ReceiptURL:   "/api/v1/orders/" + result.Order.ID + "/receipt",
	})
	if err != nil {
		status, payload := errorPayload(err)
		return idempotency.Response{Status: status, Body: payload}
	}
	return idempotency.Response{Status: http.StatusCreated, Body: body}
}

// orderReceipt отдаёт PDF-чек. Идентификатор заказа, случайный UUID, его знает
// только оформивший клиент и администратор.
func (s *Server) orderReceipt(w http.ResponseWriter, r *http.Request) {
	order, err := s.deps.Orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := receipt.OrderBytes(order, s.deps.Receipt)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writePDF(w, fmt.Sprintf("pedido-%s.pdf", order.ID), data)
}

func (s *Server) serveMedia(w http.ResponseWriter, r *http.Request) {
	if s.deps.Media == nil {
		http.NotFound(w, r)
		return
	}
	f, contentType, err := s.deps.Media.Open(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, f); err != nil {
		s.logger.WithError(err).Warn("stream media failed")
	}
}

func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
