package middleware

import (
	"net/http"
	"strings"

	"language-school/internal/data/entity"
	"language-school/internal/data/repository"
	"language-school/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Auth validates the bearer JWT and puts the verified identity on the
// request context. Signature and expiry are checked by the parser; no
// database round-trip happens here.
func Auth(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			email, _ := claims["sub"].(string)
			if email == "" {
				logger.Warn("Token missing subject claim")
				utils.ResponseUnauthorized(w, "Invalid token claims")
				return
			}
			name, _ := claims["name"].(string)

			ctx := utils.SetUserContext(r.Context(), email, name)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole is the authorization gate for role-guarded routes. It is a
// single composed check: pull the verified email off the context, look the
// user up, compare the stored role. Must sit after Auth in the chain.
func RequireRole(userRepo repository.UserRepository, role entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := utils.GetEmailFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByEmail(r.Context(), email)
			if err != nil {
				logger.Error("Role check: failed to get user",
					zap.Error(err), zap.String("email", email))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.Role != role {
				logger.Warn("Role check: access denied",
					zap.String("email", email),
					zap.String("required_role", string(role)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, string(role)+" access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
