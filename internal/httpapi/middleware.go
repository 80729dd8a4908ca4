package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/vladislavdragonenkov/cardapio/internal/auth"
)

const (
	sessionCookie = "cardapio_session"
	sessionHeader = "X-Session-ID"
)

type sessionKey struct{}

// SessionFrom возвращает идентификатор клиентской сессии из контекста.
func SessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// session назначает клиенту идентификатор сессии: из cookie, из заголовка
// X-Session-ID или новый.
func (s *Server) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(sessionCookie); err == nil {
			id = strings.TrimSpace(c.Value)
		}
		if id == "" {
			id = strings.TrimSpace(r.Header.Get(sessionHeader))
		}
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   int(s.deps.SessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   s.deps.SecureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		w.Header().Set(sessionHeader, id)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, id)))
	})
}

// adminOnly пропускает запрос, только если Gate его аутентифицировал.
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, principal, err := s.deps.Gate.Authenticate(r.Context(), auth.BearerToken(r.Header.Get("Authorization")))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.logger.WithFields(log.Fields{"admin": principal.Username, "path": r.URL.Path}).Debug("admin request")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				respond(w, http.StatusTooManyRequests, errorBody{Error: "rate_limited", Message: "too many orders, try again shortly"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger пишет по записи logrus на каждый запрос.
func requestLogger(logger *log.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			entry := logger.WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(started).Milliseconds(),
				"request_id":  middleware.GetReqID(r.Context()),
			})
			switch {
			case status >= 500:
				entry.Error("http request")
			case status >= 400:
				entry.Warn("http request")
			default:
				entry.Debug("http request")
			}
		})
	}
}
