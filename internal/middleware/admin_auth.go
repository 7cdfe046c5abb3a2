package middleware

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const defaultAdminTokenHeader = "X-Admin-Token"

// adminRole is the role claim value required for bearer-token access.
const adminRole = "admin"

// AuthContext carries the authenticated identity for admin requests.
type AuthContext struct {
	Subject string
	Method  string
	Claims  map[string]interface{}
}

type authContextKey struct{}

// WithAuthContext stores the auth context on the request context.
func WithAuthContext(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, ac)
}

// AuthFromContext retrieves the auth context, if any.
func AuthFromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(authContextKey{}).(AuthContext)
	return ac, ok
}

// AdminAuthConfig controls authentication for admin endpoints. At least one
// of Token or JWTSecret must be set. When both are set, either method is
// accepted.
type AdminAuthConfig struct {
	Token      string
	HeaderName string
	JWTSecret  string
}

// AdminAuthMiddleware validates either a shared admin token from request
// headers or an HMAC-signed bearer token carrying an admin role claim.
func AdminAuthMiddleware(cfg AdminAuthConfig) (func(http.Handler) http.Handler, error) {
	token := strings.TrimSpace(cfg.Token)
	secret := strings.TrimSpace(cfg.JWTSecret)
	if token == "" && secret == "" {
		return nil, errors.New("admin auth requires a shared token or JWT secret")
	}
	headerName := strings.TrimSpace(cfg.HeaderName)
	if headerName == "" {
		headerName = defaultAdminTokenHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" {
				provided := strings.TrimSpace(r.Header.Get(headerName))
				if provided != "" && constantTimeTokenMatch(provided, token) {
					ctx := WithAuthContext(r.Context(), AuthContext{
						Subject: "admin_token",
						Method:  "admin_token",
					})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			if secret != "" {
				if ac, ok := validateBearerToken(r, secret); ok {
					next.ServeHTTP(w, r.WithContext(WithAuthContext(r.Context(), ac)))
					return
				}
			}

			writeAdminUnauthorized(w)
		})
	}, nil
}

func validateBearerToken(r *http.Request, secret string) (AuthContext, bool) {
	header := r.Header.Get("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return AuthContext{}, false
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil || !parsed.Valid {
		return AuthContext{}, false
	}

	role, _ := claims["role"].(string)
	if role != adminRole {
		return AuthContext{}, false
	}

	subject, _ := claims.GetSubject()
	return AuthContext{
		Subject: subject,
		Method:  "jwt",
		Claims:  claims,
	}, true
}

func constantTimeTokenMatch(provided string, expected string) bool {
	providedDigest := sha256.Sum256([]byte(provided))
	expectedDigest := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(providedDigest[:], expectedDigest[:]) == 1
}

func writeAdminUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = fmt.Fprint(w, `{"error":"unauthorized"}`)
}
