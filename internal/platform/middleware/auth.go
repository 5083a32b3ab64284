package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Actor roles carried in session tokens.
const (
	RoleCustomer = "customer"
	RoleOfficer  = "officer"
)

// JWTValidator defines the interface for validating session tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the token validator.
type JWTClaims struct {
	ActorID   string
	ActorName string
	Role      string
	SessionID string
}

type contextKeyActorID struct{}
type contextKeyActorName struct{}
type contextKeyRole struct{}
type contextKeySessionID struct{}

var (
	ContextKeyActorID   = contextKeyActorID{}
	ContextKeyActorName = contextKeyActorName{}
	ContextKeyRole      = contextKeyRole{}
	ContextKeySessionID = contextKeySessionID{}
)

// GetActorID retrieves the authenticated actor id from the context.
func GetActorID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyActorID).(string)
	return id
}

// GetActorName retrieves the authenticated actor's display name.
func GetActorName(ctx context.Context) string {
	name, _ := ctx.Value(ContextKeyActorName).(string)
	return name
}

// GetRole retrieves the actor role from the context.
func GetRole(ctx context.Context) string {
	role, _ := ctx.Value(ContextKeyRole).(string)
	return role
}

// GetSessionID retrieves the session id from the context.
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeySessionID).(string)
	return id
}

// RequireAuth validates the bearer token and requires the given role. The
// resolved actor identity is placed on the request context for handlers.
func RequireAuth(validator JWTValidator, role string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				unauthorized(w)
				return
			}
			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "invalid session token",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				unauthorized(w)
				return
			}
			if claims.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"forbidden"}`))
				return
			}
			ctx := r.Context()
			ctx = context.WithValue(ctx, ContextKeyActorID, claims.ActorID)
			ctx = context.WithValue(ctx, ContextKeyActorName, claims.ActorName)
			ctx = context.WithValue(ctx, ContextKeyRole, claims.Role)
			ctx = context.WithValue(ctx, ContextKeySessionID, claims.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"Invalid or expired token"}`))
}
