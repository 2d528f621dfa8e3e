package middleware

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"qrpatrol/internal/domain"
)

type ctxKey string

const (
	guardKey      ctxKey = "guard_identity"
	supervisorKey ctxKey = "supervisor"
)

// APIKeyMiddleware guards the admin surface with a shared key passed in the
// X-API-Key header.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				http.Error(w, "admin api disabled", http.StatusServiceUnavailable)
				return
			}

			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type GuardResolver interface {
	ResolveGuard(ctx context.Context, email string) (*domain.GuardIdentity, error)
}

type SupervisorResolver interface {
	ResolveSupervisor(ctx context.Context, email string) (*domain.Supervisor, error)
}

// GuardAuth resolves the X-Guard-Email header to an active guard and stores
// the identity in the request context. Unknown or inactive guards get a 401.
func GuardAuth(resolver GuardResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := r.Header.Get("X-Guard-Email")
			if email == "" {
				http.Error(w, "X-Guard-Email required", http.StatusUnauthorized)
				return
			}

			actor, err := resolver.ResolveGuard(r.Context(), email)
			if err != nil {
				logger.Warn("guard auth failed", slog.String("email", email), slog.Any("error", err))
				http.Error(w, "guard not found or inactive", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), guardKey, *actor)))
		})
	}
}

// SupervisorAuth resolves the X-Supervisor-Email header the same way.
func SupervisorAuth(resolver SupervisorResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := r.Header.Get("X-Supervisor-Email")
			if email == "" {
				http.Error(w, "X-Supervisor-Email required", http.StatusUnauthorized)
				return
			}

			sup, err := resolver.ResolveSupervisor(r.Context(), email)
			if err != nil {
				logger.Warn("supervisor auth failed", slog.String("email", email), slog.Any("error", err))
				http.Error(w, "supervisor not found or inactive", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), supervisorKey, *sup)))
		})
	}
}

func GuardFromContext(ctx context.Context) (domain.GuardIdentity, bool) {
	actor, ok := ctx.Value(guardKey).(domain.GuardIdentity)
	return actor, ok
}

func SupervisorFromContext(ctx context.Context) (domain.Supervisor, bool) {
	sup, ok := ctx.Value(supervisorKey).(domain.Supervisor)
	return sup, ok
}
