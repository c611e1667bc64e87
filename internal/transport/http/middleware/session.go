package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/staffdeck/directory-service/internal/domain"
)

// SessionDecoder is the minimal surface the middleware needs: decode a raw
// token into a verified identity, or nil if it cannot.
type SessionDecoder interface {
	SessionFromToken(token string) *domain.SessionIdentity
}

type sessionCtxKey struct{}

// Session decodes the Authorization header into a SessionIdentity and puts
// it in the request context. A missing, malformed or expired token leaves
// the request unauthenticated instead of rejecting it; the use cases make
// the access decision.
func Session(decoder SessionDecoder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromHeader(r.Header.Get("Authorization"))
			if raw != "" {
				if session := decoder.SessionFromToken(raw); session != nil {
					r = r.WithContext(WithSession(r.Context(), session))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// tokenFromHeader accepts both "Bearer <token>" and a bare token value.
func tokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

func WithSession(ctx context.Context, session *domain.SessionIdentity) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// SessionFromContext returns the verified caller identity, or nil for an
// unauthenticated request.
func SessionFromContext(ctx context.Context) *domain.SessionIdentity {
	if s, ok := ctx.Value(sessionCtxKey{}).(*domain.SessionIdentity); ok {
		return s
	}
	return nil
}
