package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/andrejsk/prodcatalog/internal/common"
	"github.com/andrejsk/prodcatalog/internal/server/models"
)

type contextKey struct {
	name string
}

var ctxKeyUser = contextKey{"user"}

// UserFromContext returns the authenticated user attached by the
// authentication middleware, or nil for unauthenticated requests.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(ctxKeyUser).(*models.User)
	return user
}

// authentication verifies the Authorization header, resolves the token
// subject to a live account and attaches it to the request context. The
// failure modes stay distinct so the client can tell a missing header from
// a stale token or a deleted account.
func (s *HTTPServer) authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.renderError(w, r, common.ErrorNotAuthenticated)
			return
		}

		userID, err := s.codec.Parse(token)
		if err != nil {
			s.renderError(w, r, err)
			return
		}

		user, err := s.repomanager.Users(s.db).GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				s.renderError(w, r, common.ErrorAccountNotFound)
				return
			}
			s.renderError(w, r, common.ErrorInternal)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
		)
	})
}
