package service

import (
	"context"
	"strings"
	"time"

	"github.com/campus-kit/triage-service/internal/auth"
	"github.com/campus-kit/triage-service/internal/config"
	"github.com/campus-kit/triage-service/internal/domain"
	apperrors "github.com/campus-kit/triage-service/pkg/util/errorutil"
)

// AuthService issues session tokens for the two roles. There is no
// account store: submitters are identified by the profile they present,
// operators by a shared access key.
type AuthService struct {
	tokenMgr *auth.TokenManager
	authCfg  config.AuthConfig
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config) *AuthService {
	return &AuthService{
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
		authCfg:  cfg.Auth,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// LoginSubmitter validates the presented profile and issues a
// submitter-role token with the profile embedded.
func (s *AuthService) LoginSubmitter(_ context.Context, submitter domain.Submitter) (string, time.Time, error) {
	if strings.TrimSpace(submitter.Name) == "" || strings.TrimSpace(submitter.RollNumber) == "" {
		return "", time.Time{}, apperrors.NewValidationError("name and roll number required", nil)
	}
	return s.tokenMgr.GenerateToken(submitter.RollNumber, domain.RoleSubmitter, &submitter)
}

// LoginOperator verifies the shared access key and issues an
// operator-role token.
func (s *AuthService) LoginOperator(_ context.Context, accessKey string) (string, time.Time, error) {
	if err := auth.VerifyAccessKey(s.authCfg.OperatorKey, s.authCfg.OperatorKeyHash, accessKey); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid access key")
	}
	return s.tokenMgr.GenerateToken("operator", domain.RoleOperator, nil)
}
