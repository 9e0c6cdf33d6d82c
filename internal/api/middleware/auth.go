package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"customer-management/internal/api/handler/dto"
	"customer-management/internal/config"
	"customer-management/internal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

var errMissingToken = errors.New("missing bearer token")

// AuthMiddleware rejects requests without a valid HS256 bearer token. It is a pass-through when auth is disabled.
func AuthMiddleware(cfg config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := validateJWT(r, cfg.JWTSecret)
			if err != nil {
				logger.WarnContext(r.Context(), "AuthMiddleware: Rejected request", "path", r.URL.Path, "error", err)
				writeJSONError(w, http.StatusUnauthorized, dto.ErrorDetail{Code: apperrors.CodeUnauthorized, Message: "Unauthorized"})
				return
			}
			logger.DebugContext(r.Context(), "AuthMiddleware: Authenticated request", "subject", claims.Subject)
			next.ServeHTTP(w, r)
		})
	}
}

func validateJWT(r *http.Request, secret string) (*jwt.RegisteredClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingToken
	}

	scheme, tokenString, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(tokenString) == "" {
		return nil, errors.New("invalid Authorization header format")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

func writeJSONError(w http.ResponseWriter, status int, detail dto.ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: detail})
}
