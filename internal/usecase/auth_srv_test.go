package usecase

import (
	"context"
	"testing"
	"time"

	"language-school/internal/dto/request"
	"language-school/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

func TestIssueToken(t *testing.T) {
	config := &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24},
	}

	svc := NewAuthService(config, zap.NewNop())

	resp, err := svc.IssueToken(context.Background(), &request.TokenRequest{
		Email: "alice@example.com",
		Name:  "Alice",
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	remaining := time.Until(resp.ExpiresAt)
	if remaining < 23*time.Hour || remaining > 25*time.Hour {
		t.Errorf("expiry %v from now, want about 24h", remaining)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse issued token: %v (valid=%v)", err, token != nil && token.Valid)
	}

	if sub, _ := claims["sub"].(string); sub != "alice@example.com" {
		t.Errorf("sub = %q, want alice@example.com", sub)
	}
	if name, _ := claims["name"].(string); name != "Alice" {
		t.Errorf("name = %q, want Alice", name)
	}
}
