package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/media"
	"github.com/vladislavdragonenkov/cardapio/internal/service/idempotency"
)

const maxJSONBody = 1 << 20

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &badRequestError{msg: "invalid JSON body: " + err.Error()}
	}
	return nil
}

type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

func badRequest(msg string) error { return &badRequestError{msg: msg} }

// errorStatus переводит доменную ошибку в HTTP-статус и машинный код.
func errorStatus(err error) (int, string) {
	var bad *badRequestError
	switch {
	case errors.As(err, &bad):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrStoreClosed):
		return http.StatusServiceUnavailable, "store_closed"
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "missing_fields"
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		return http.StatusBadRequest, "invalid_payment_method"
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusUnprocessableEntity, "empty_cart"
	case errors.Is(err, domain.ErrInvalidCategoryOperation):
		return http.StatusConflict, "invalid_category_operation"
	case errors.Is(err, domain.ErrInvalidTheme):
		return http.StatusBadRequest, "invalid_theme"
	case errors.Is(err, domain.ErrIdempotencyHashMismatch):
		return http.StatusUnprocessableEntity, "idempotency_key_reused"
	case errors.Is(err, idempotency.ErrInProgress):
		return http.StatusConflict, "request_in_progress"
	case domain.IsNotFound(err), errors.Is(err, media.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, media.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, "file_too_large"
	case errors.Is(err, media.ErrInvalidName), errors.Is(err, media.ErrUnsupportedType):
		return http.StatusBadRequest, "invalid_file"
	case domain.IsValidation(err):
		return http.StatusBadRequest, "validation_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	msg := err.Error()
	if status >= 500 {
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		msg = "internal error"
	}
	respond(w, status, errorBody{Error: code, Message: msg})
}

func errorPayload(err error) (int, []byte) {
	status, code := errorStatus(err)
	msg := err.Error()
	if status >= 500 {
		msg = "internal error"
	}
	body, _ := json.Marshal(errorBody{Error: code, Message: msg})
	return status, body
}
