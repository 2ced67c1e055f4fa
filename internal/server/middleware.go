package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/trailworks/cluehunt/internal/hunt"
)

type ctxKey int

const ctxKeyTeam ctxKey = iota

func teamMiddleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			team, err := teamFromRequest(r, store)
			if errors.Is(err, errNoTeam) {
				writeError(w, http.StatusUnauthorized, "invalid or missing team credential")
				return
			}
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyTeam, team)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func teamFrom(r *http.Request) hunt.Team {
	return r.Context().Value(ctxKeyTeam).(hunt.Team)
}

// adminAuthMiddleware guards the admin surface with a shared secret over
// HTTP Basic. An unset secret fails closed, and the response is the same
// 401 whether the secret is unset or mismatched.
func adminAuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, password, ok := r.BasicAuth()
			if secret == "" || !ok || !secretMatches(secret, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="Admin"`)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// secretMatches accepts either a bcrypt hash or a plain shared secret in
// the configured value; plain values are compared in constant time.
func secretMatches(secret, presented string) bool {
	if strings.HasPrefix(secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(presented)) == 1
}
