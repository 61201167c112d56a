package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type ctxKey struct{}

var (
	ctxSubjectKey      = ctxKey{}
	errUnauthenticated = errors.New("unauthenticated")
)

// authMiddleware requires a Bearer token when a token parser is configured.
func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.tokenSvc == nil {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := a.tokenSvc.ParseToken(token)
		if err != nil {
			a.logger.WithError(err).Debug("rejected bearer token")
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), ctxSubjectKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func subjectFromContext(ctx context.Context) string {
	if sub, ok := ctx.Value(ctxSubjectKey).(string); ok {
		return sub
	}
	return ""
}
