package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"language-school/internal/data/entity"
	"language-school/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, email string, expiry time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  email,
		"name": "Test User",
		"iat":  now.Unix(),
		"exp":  now.Add(expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuth(t *testing.T) {
	handler := Auth(testSecret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := utils.GetEmailFromContext(r.Context())
		if !ok {
			t.Error("email missing from context")
		}
		if email != "alice@example.com" {
			t.Errorf("context email = %q, want alice@example.com", email)
		}
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		request    *http.Request
		wantStatus int
	}{
		{
			name:       "missing token",
			request:    authedRequest(""),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed header",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/protected", nil)
				req.Header.Set("Authorization", "Token abc")
				return req
			}(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			request:    authedRequest("not.a.jwt"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			request:    authedRequest(signToken(t, testSecret, "alice@example.com", -time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			request:    authedRequest(signToken(t, "other-secret", "alice@example.com", time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			request:    authedRequest(signToken(t, testSecret, "alice@example.com", time.Hour)),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tt.request)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

// roleCheckUserRepo serves only FindByEmail; the rest of the interface is
// unused by the role guard.
type roleCheckUserRepo struct {
	users map[string]*entity.User
}

func (r *roleCheckUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (r *roleCheckUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, nil
}

func (r *roleCheckUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *roleCheckUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (r *roleCheckUserRepo) CountAll(ctx context.Context) (int64, error) { return 0, nil }

func (r *roleCheckUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	return nil
}

func (r *roleCheckUserRepo) FindByRole(ctx context.Context, role entity.UserRole, limit int) ([]*entity.User, error) {
	return nil, nil
}

func TestRequireRole(t *testing.T) {
	repo := &roleCheckUserRepo{users: map[string]*entity.User{
		"student@example.com": {Email: "student@example.com", Role: entity.RoleStudent},
		"admin@example.com":   {Email: "admin@example.com", Role: entity.RoleAdmin},
	}}

	handler := RequireRole(repo, entity.RoleStudent, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		email      string
		wantStatus int
	}{
		{"matching role", "student@example.com", http.StatusOK},
		{"wrong role", "admin@example.com", http.StatusForbidden},
		{"unknown user", "ghost@example.com", http.StatusForbidden},
		{"no identity on context", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.email != "" {
				req = req.WithContext(utils.SetUserContext(req.Context(), tt.email, "Test User"))
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
