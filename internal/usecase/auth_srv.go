package usecase

import (
	"context"
	"fmt"
	"time"

	"language-school/internal/dto/request"
	"language-school/internal/dto/response"
	"language-school/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type AuthService interface {
	IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// IssueToken re-packages an identity the external provider already
// authenticated into this system's own time-boxed credential. There is no
// password to check here.
func (s *authService) IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	expiresAt := time.Now().Add(time.Duration(s.config.JWT.ExpiryHours) * time.Hour)

	claims := jwt.MapClaims{
		"sub":  req.Email,
		"name": req.Name,
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("sign token for %s: %w", req.Email, err)
	}

	s.log.Info("Token issued",
		zap.String("email", req.Email),
		zap.Time("expires_at", expiresAt),
	)

	return &response.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
