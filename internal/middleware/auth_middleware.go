package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Anurag07-07/Resculink/internal/domain"
	"github.com/Anurag07-07/Resculink/pkg/jwtutil"
	"github.com/Anurag07-07/Resculink/pkg/response"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

// AccountSource resolves an authenticated id to its current account state.
// Role and verification checks always go back to the store rather than
// trusting token claims, since a decision may land after token issue.
type AccountSource interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// VerificationGate blocks gated actions for unapproved NGO accounts.
type VerificationGate interface {
	Gate(ctx context.Context, userID string) error
}

type AuthMiddleware struct {
	verifier *jwtutil.Verifier
	users    AccountSource
	gate     VerificationGate
}

func NewAuthMiddleware(verifier *jwtutil.Verifier, users AccountSource, gate VerificationGate) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, users: users, gate: gate}
}

func (am *AuthMiddleware) extractToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), true
	}
	// Browsers cannot set headers on websocket upgrades.
	if token := r.URL.Query().Get("token"); token != "" {
		return token, true
	}
	return "", false
}

// Require authenticates the request and stores identity in the context.
func (am *AuthMiddleware) Require() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := am.extractToken(r)
			if !ok {
				response.Error(w, http.StatusUnauthorized, "missing token")
				return
			}

			claims, err := am.verifier.ParseAndValidate(token)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextRole, claims.Role)
			ctx = context.WithValue(ctx, ContextToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin refetches the account and rejects non-admins.
func (am *AuthMiddleware) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok || userID == "" {
				response.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			user, err := am.users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, xerrors.ErrUserNotFound) {
					response.Error(w, http.StatusNotFound, "user not found")
					return
				}
				response.Error(w, http.StatusInternalServerError, "server error")
				return
			}
			if user.Role != domain.RoleAdmin {
				response.Error(w, http.StatusForbidden, "admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireVerified enforces the NGO verification gate on gated actions.
func (am *AuthMiddleware) RequireVerified() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok || userID == "" {
				response.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if err := am.gate.Gate(r.Context(), userID); err != nil {
				if errors.Is(err, xerrors.ErrForbidden) {
					response.ErrorWithCode(w, http.StatusForbidden, xerrors.ReasonOf(err), err.Error())
					return
				}
				if errors.Is(err, xerrors.ErrUserNotFound) {
					response.Error(w, http.StatusNotFound, "user not found")
					return
				}
				response.Error(w, http.StatusInternalServerError, "server error")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
